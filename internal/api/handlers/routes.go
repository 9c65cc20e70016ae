package handlers

import (
	"directions-route-service/internal/api/dto"
	"directions-route-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// RouteHandler exposes the saved routes.
type RouteHandler struct {
	Repo ports.RouteRepository
	Log  *zap.Logger
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, h.Log, http.MethodGet) {
		return
	}

	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		h.Log.Error("list routes failed", zap.Error(err))
		writeError(w, r, h.Log, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(routes)),
	}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.RouteResponse{
			Name:      rt.Name,
			Waypoints: rt.Waypoints,
		})
	}

	writeJSON(w, r, h.Log, http.StatusOK, res)
}
