package ports

import (
	"context"
	"directions-route-service/internal/domain"
)

// Contract for the remote directions service.
//
// FetchPolyline requests a driving route for one chunk and returns the raw
// encoded overview polyline. Failures wrap domain.ErrTransport or
// domain.ErrUnexpectedStatus (plus a more specific sentinel) so callers can
// tell them apart.
type DirectionsFetcher interface {
	FetchPolyline(ctx context.Context, chunk domain.Chunk) (string, error)
}
