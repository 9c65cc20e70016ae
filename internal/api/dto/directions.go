package dto

import "github.com/paulmach/orb/geojson"

// DirectionsRequest names a saved route or carries raw "lat,lng" waypoints.
// Exactly one of the two must be set.
type DirectionsRequest struct {
	Name      string   `json:"name"`
	Waypoints []string `json:"waypoints"`
}

type DirectionsResponse struct {
	Name          string           `json:"name,omitempty"`
	InputCount    int              `json:"input_count"`
	AcceptedCount int              `json:"accepted_count"`
	Rejected      []string         `json:"rejected"`
	RequiredCalls int              `json:"required_calls"`
	Calls         int              `json:"calls"`
	Remaining     int              `json:"remaining"`
	PointCount    int              `json:"point_count"`
	Messages      []string         `json:"messages"`
	Error         string           `json:"error,omitempty"`
	Route         *geojson.Feature `json:"route"`
}
