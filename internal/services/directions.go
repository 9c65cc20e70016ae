package services

import (
	"context"
	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/logging"
	"directions-route-service/internal/platform/obs"
	"directions-route-service/internal/polyline"
	"directions-route-service/internal/ports"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// MaxWaypointsLimit is the number of via-waypoints the Google Directions API
// accepts per request, in addition to origin and destination.
const MaxWaypointsLimit = 23

// DirectionsService resolves a route chunk by chunk against a DirectionsFetcher
// and accumulates the decoded path on the route.
type DirectionsService struct {
	fetcher      ports.DirectionsFetcher
	decoder      *polyline.Decoder
	sink         logging.Sink
	log          *zap.Logger
	maxWaypoints int
}

type Option func(*DirectionsService)

func WithMaxWaypoints(n int) Option {
	return func(s *DirectionsService) {
		if n > 0 {
			s.maxWaypoints = n
		}
	}
}

// WithSink sets where failed chunks (and, unless WithDecoder is used, invalid
// decoded points) are reported.
func WithSink(sink logging.Sink) Option {
	return func(s *DirectionsService) { s.sink = logging.OrNop(sink) }
}

func WithDecoder(d *polyline.Decoder) Option {
	return func(s *DirectionsService) { s.decoder = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *DirectionsService) { s.log = l }
}

func NewDirectionsService(fetcher ports.DirectionsFetcher, opts ...Option) *DirectionsService {
	s := &DirectionsService{
		fetcher:      fetcher,
		sink:         logging.Nop,
		maxWaypoints: MaxWaypointsLimit,
	}
	for _, o := range opts {
		o(s)
	}
	if s.decoder == nil {
		s.decoder = polyline.NewDecoder(s.sink)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// MaxWaypoints returns the per-request waypoint limit in effect.
func (s *DirectionsService) MaxWaypoints() int { return s.maxWaypoints }

// GetDirections resolves the next chunk of route and appends the decoded path.
//
// On failure the route is rewound to its state before the call, the failure is
// reported to the sink, and the same route is returned together with the error.
func (s *DirectionsService) GetDirections(ctx context.Context, route *domain.Route) (_ *domain.Route, err error) {
	defer obs.Time(ctx, s.log, "directions.GetDirections")(&err)

	if route == nil {
		return nil, errors.New("get directions: route must be non-nil")
	}

	cp := route.Mark()
	chunk, ok := NextChunk(route, s.maxWaypoints)
	if !ok {
		return route, nil
	}

	encoded, err := s.fetcher.FetchPolyline(ctx, chunk)
	if err != nil {
		route.Rewind(cp)
		err = fmt.Errorf("get directions: %s -> %s: %w", chunk.Origin, chunk.Destination, err)
		s.sink.Error(err.Error())
		return route, err
	}

	if err := route.AddToInterpolatedRoute(s.decoder.Decode(encoded)...); err != nil {
		route.Rewind(cp)
		err = fmt.Errorf("get directions: %w", err)
		s.sink.Error(err.Error())
		return route, err
	}

	s.log.Debug("chunk resolved",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.Int("waypoints", len(chunk.Waypoints)),
		zap.Int("remaining", route.RemainingCoordinateCount()),
	)
	return route, nil
}

// Resolve calls GetDirections until nothing remains or a chunk fails. It
// returns the number of successful calls. Whatever was merged before a failure
// stays on the route.
func (s *DirectionsService) Resolve(ctx context.Context, route *domain.Route) (*domain.Route, int, error) {
	if route == nil {
		return nil, 0, errors.New("resolve route: route must be non-nil")
	}

	calls := 0
	for route.RemainingCoordinateCount() > 0 {
		if err := ctx.Err(); err != nil {
			return route, calls, fmt.Errorf("resolve route: %w", err)
		}

		if _, err := s.GetDirections(ctx, route); err != nil {
			return route, calls, err
		}
		calls++
	}

	return route, calls, nil
}

// NextChunk consumes up to maxWaypoints+1 coordinates after the current one.
// The last consumed coordinate becomes the destination and the others the
// via-waypoints. It returns false, leaving route untouched, when there is no
// current coordinate or nothing remains.
func NextChunk(route *domain.Route, maxWaypoints int) (domain.Chunk, bool) {
	origin, ok := route.CurrentCoordinate()
	if !ok || route.RemainingCoordinateCount() == 0 {
		return domain.Chunk{}, false
	}

	collected := make([]domain.Coordinate, 0, min(route.RemainingCoordinateCount(), maxWaypoints+1))
	for cnt := 1; cnt <= maxWaypoints+1; cnt++ {
		c, ok := route.NextCoordinate()
		if !ok {
			break
		}
		collected = append(collected, c)
	}

	last := len(collected) - 1
	return domain.Chunk{
		Origin:      origin,
		Waypoints:   collected[:last:last],
		Destination: collected[last],
	}, true
}

// RequiredCalls is the number of requests needed for a route of total
// coordinates: ceil((total-1) / (maxWaypoints+1)).
func RequiredCalls(total, maxWaypoints int) int {
	if total <= 1 {
		return 0
	}
	per := maxWaypoints + 1
	return (total - 1 + per - 1) / per
}
