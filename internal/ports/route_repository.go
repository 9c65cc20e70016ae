package ports

import "context"

// A named list of raw "lat,lng" waypoints kept for repeated resolution.
type SavedRoute struct {
	Name      string
	Waypoints []string
}

// Port: a boundary for retrieving saved routes from a data source.
type RouteRepository interface {
	ListRoutes(ctx context.Context) ([]SavedRoute, error)
	// GetRoute returns ErrRouteNotFound when name is unknown.
	GetRoute(ctx context.Context, name string) (SavedRoute, error)
}
