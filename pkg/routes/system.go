package routes

import "net/http"

// System collects routes and route groups and builds the final handler.
type System interface {
	// Routes returns all individually registered routes.
	Routes() []Route

	// Groups returns all registered route groups.
	Groups() []Group

	// RegisterRoute adds a route to the route system.
	RegisterRoute(route Route)

	// RegisterGroup adds a route group to the route system.
	RegisterGroup(group Group)

	// Build constructs an http.Handler from all registered routes and groups.
	Build() http.Handler
}
