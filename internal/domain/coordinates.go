package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bounds accepted by the directions service (Mercator projection, not full WGS84).
const (
	MinLatitude  = -85.0
	MaxLatitude  = 85.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Greenwich, Royal Observatory as placed by Google Maps.
const (
	defaultLatitude  = 51.476780
	defaultLongitude = 0.000479
)

// Validated geographic coordinate (latitude, longitude).
// The zero value is (0, 0), which is valid.
type Coordinate struct {
	lat float64
	lng float64
}

// CoordinateError reports a coordinate outside the service bounds.
// Both violations are listed when latitude and longitude are out of range.
type CoordinateError struct {
	Latitude  float64
	Longitude float64
	msg       string
}

func (e *CoordinateError) Error() string { return e.msg }

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// NewCoordinate validates lat and lng and returns the coordinate.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	msgs := make([]string, 0, 2)
	if m := latitudeViolation(lat); m != "" {
		msgs = append(msgs, m)
	}
	if m := longitudeViolation(lng); m != "" {
		msgs = append(msgs, m)
	}
	if len(msgs) > 0 {
		return Coordinate{}, &CoordinateError{
			Latitude:  lat,
			Longitude: lng,
			msg:       strings.Join(msgs, " "),
		}
	}

	return Coordinate{lat: lat, lng: lng}, nil
}

// MustCoordinate is NewCoordinate for literals known to be valid. It panics otherwise.
func MustCoordinate(lat, lng float64) Coordinate {
	c, err := NewCoordinate(lat, lng)
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultCoordinate() Coordinate {
	return Coordinate{lat: defaultLatitude, lng: defaultLongitude}
}

func (c Coordinate) Latitude() float64  { return c.lat }
func (c Coordinate) Longitude() float64 { return c.lng }

// SetLatitude re-validates; c is left unchanged on error.
func (c *Coordinate) SetLatitude(lat float64) error {
	if m := latitudeViolation(lat); m != "" {
		return &CoordinateError{Latitude: lat, Longitude: c.lng, msg: m}
	}
	c.lat = lat
	return nil
}

// SetLongitude re-validates; c is left unchanged on error.
func (c *Coordinate) SetLongitude(lng float64) error {
	if m := longitudeViolation(lng); m != "" {
		return &CoordinateError{Latitude: c.lat, Longitude: lng, msg: m}
	}
	c.lng = lng
	return nil
}

// Validate re-checks the bounds of an existing value.
func (c Coordinate) Validate() error {
	_, err := NewCoordinate(c.lat, c.lng)
	return err
}

// String renders "lat,lng" as expected by the directions service.
func (c Coordinate) String() string {
	return FormatFloat(c.lat) + "," + FormatFloat(c.lng)
}

// Return coordinates as [lng, lat] for GeoJSON compatibility.
func (c Coordinate) CoordsToList() []float64 { return []float64{c.lng, c.lat} }

// FormatFloat renders the shortest decimal that round-trips, without exponent.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func latitudeViolation(v float64) string {
	switch {
	case math.IsNaN(v):
		return fmt.Sprintf("Latitude %s is not a number.", FormatFloat(v))
	case v < MinLatitude:
		return fmt.Sprintf("Latitude %s lesser than allowed (%s).", FormatFloat(v), FormatFloat(MinLatitude))
	case v > MaxLatitude:
		return fmt.Sprintf("Latitude %s greater than allowed (%s).", FormatFloat(v), FormatFloat(MaxLatitude))
	}
	return ""
}

func longitudeViolation(v float64) string {
	switch {
	case math.IsNaN(v):
		return fmt.Sprintf("Longitude %s is not a number.", FormatFloat(v))
	case v < MinLongitude:
		return fmt.Sprintf("Longitude %s lesser than allowed (%s).", FormatFloat(v), FormatFloat(MinLongitude))
	case v > MaxLongitude:
		return fmt.Sprintf("Longitude %s greater than allowed (%s).", FormatFloat(v), FormatFloat(MaxLongitude))
	}
	return ""
}
