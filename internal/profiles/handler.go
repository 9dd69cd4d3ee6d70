package profiles

import (
	"log/slog"
	"net/http"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/handlers"
	"github.com/layerbylayersg/slicer-estimate-api/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/profiles",
		Description: "Slicing profile catalog",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Catalog())
}
