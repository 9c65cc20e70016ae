package services

import (
	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/logging"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// RouteFactory builds seeded routes from raw "lat,lng" strings.
// Items that cannot be turned into a valid coordinate are skipped and reported
// to the sink.
type RouteFactory struct {
	sink logging.Sink
}

type FactoryOption func(*RouteFactory)

func WithFactorySink(s logging.Sink) FactoryOption {
	return func(f *RouteFactory) { f.sink = logging.OrNop(s) }
}

func NewRouteFactory(opts ...FactoryOption) *RouteFactory {
	f := &RouteFactory{sink: logging.Nop}
	for _, o := range opts {
		o(f)
	}
	return f
}

// CreateRoute returns a route seeded with the valid items, in input order.
func (f *RouteFactory) CreateRoute(items []string) *domain.Route {
	route, _ := f.CreateRouteWithReport(items)
	return route
}

// CreateRouteWithReport is CreateRoute that also returns one error per skipped item.
func (f *RouteFactory) CreateRouteWithReport(items []string) (*domain.Route, []error) {
	coords := make([]domain.Coordinate, 0, len(items))
	var rejected []error

	for _, item := range items {
		c, err := parseCoordinate(item)
		if err != nil {
			f.sink.Error(err.Error())
			rejected = append(rejected, err)
			continue
		}
		coords = append(coords, c)
	}

	return domain.NewRoute(coords), rejected
}

// itemError carries the report message for one rejected item.
type itemError struct {
	msg  string
	kind error
}

func (e *itemError) Error() string { return e.msg }
func (e *itemError) Unwrap() error { return e.kind }

func parseCoordinate(item string) (domain.Coordinate, error) {
	fields := strings.Split(item, ",")
	if len(fields) != 2 {
		return domain.Coordinate{}, &itemError{
			msg:  fmt.Sprintf("%q are not valid coordinates.", item),
			kind: domain.ErrMalformedCoordinate,
		}
	}

	values := [2]float64{}
	for i, field := range fields {
		v, ok := parseNumeric(field)
		if !ok {
			return domain.Coordinate{}, &itemError{
				msg:  fmt.Sprintf("Given coordinates %q are invalid. Value %q is not numeric.", item, field),
				kind: domain.ErrNonNumericCoordinate,
			}
		}
		values[i] = v
	}

	c, err := domain.NewCoordinate(values[0], values[1])
	if err != nil {
		return domain.Coordinate{}, &itemError{
			msg:  fmt.Sprintf("Given coordinates %q are invalid. %v", item, err),
			kind: err,
		}
	}

	return c, nil
}

// parseNumeric accepts plain decimal notation with optional sign and exponent.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numericPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
