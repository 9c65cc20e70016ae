package api

import (
	"directions-route-service/internal/api/handlers"
	"directions-route-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(repo ports.RouteRepository, fetcher ports.DirectionsFetcher, maxWaypoints int, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Repo: repo, Log: log}
	directionsHandler := &handlers.DirectionsHandler{
		Repo:         repo,
		Fetcher:      fetcher,
		MaxWaypoints: maxWaypoints,
		Log:          log,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/directions", directionsHandler.Resolve)

	return loggingMiddleware(log, mux)
}
