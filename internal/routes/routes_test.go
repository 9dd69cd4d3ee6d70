package routes_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/internal/routes"
	pkgroutes "github.com/layerbylayersg/slicer-estimate-api/pkg/routes"
)

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRoutes_Build_Route(t *testing.T) {
	sys := routes.New(slog.New(slog.DiscardHandler))
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/healthz", Handler: respond("OK")})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("response = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRoutes_Build_MethodMatch(t *testing.T) {
	sys := routes.New(slog.New(slog.DiscardHandler))
	sys.RegisterRoute(pkgroutes.Route{Method: "POST", Pattern: "/things", Handler: respond("created")})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/things", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRoutes_Build_NestedGroups(t *testing.T) {
	sys := routes.New(slog.New(slog.DiscardHandler))
	sys.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Children: []pkgroutes.Group{
			{
				Prefix: "/estimates",
				Routes: []pkgroutes.Route{
					{Method: "GET", Pattern: "", Handler: respond("list")},
					{Method: "GET", Pattern: "/{id}", Handler: func(w http.ResponseWriter, r *http.Request) {
						w.Write([]byte(r.PathValue("id")))
					}},
				},
			},
		},
	})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/api/estimates", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != "list" {
		t.Errorf("list body = %q", rec.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/estimates/abc123", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Body.String() != "abc123" {
		t.Errorf("path value = %q, want abc123", rec.Body.String())
	}
}

func TestRoutes_Build_NotFound(t *testing.T) {
	sys := routes.New(slog.New(slog.DiscardHandler))
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/healthz", Handler: respond("OK")})

	handler := sys.Build()

	req := httptest.NewRequest("GET", "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
