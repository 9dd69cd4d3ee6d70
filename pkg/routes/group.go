// Package routes defines HTTP route and route group types along with the
// registration interface used to assemble the service router.
package routes

import "net/http"

// Group represents a collection of routes with a common prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
