// Package polyline decodes Google's Encoded Polyline Algorithm Format.
//
// Each coordinate is a pair of signed deltas (latitude, then longitude) at a
// precision of 1e-5 degrees. A value is a little-endian run of 5-bit chunks,
// one chunk per character offset by 63, with 0x20 set on every character but
// the last. The accumulated bits are zigzag encoded.
//
// See https://developers.google.com/maps/documentation/utilities/polylinealgorithm
package polyline

import (
	"fmt"
	"iter"

	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/logging"
)

const (
	charOffset   = 63
	chunkMask    = 0x1f
	continueFlag = 0x20
	chunkBits    = 5
	precision    = 1e5
)

// Decoder is stateless; one value may be shared between goroutines.
// Decoded points that fall outside the coordinate bounds are reported to the
// sink and skipped.
type Decoder struct {
	sink logging.Sink
}

func NewDecoder(sink logging.Sink) *Decoder {
	return &Decoder{sink: logging.OrNop(sink)}
}

// Decode decodes encoded without reporting invalid points.
func Decode(encoded string) []domain.Coordinate {
	return NewDecoder(nil).Decode(encoded)
}

// Decode returns the coordinates of encoded in encoding order. An empty input
// yields an empty slice.
func (d *Decoder) Decode(encoded string) []domain.Coordinate {
	out := make([]domain.Coordinate, 0, len(encoded)/4)
	for c := range d.All(encoded) {
		out = append(out, c)
	}
	return out
}

// All yields the valid coordinates of encoded lazily.
func (d *Decoder) All(encoded string) iter.Seq[domain.Coordinate] {
	return func(yield func(domain.Coordinate) bool) {
		var lat, lng int64
		index := 0

		for index < len(encoded) {
			var dLat, dLng int64
			dLat, index = decodeValue(encoded, index)
			dLng, index = decodeValue(encoded, index)
			lat += dLat
			lng += dLng

			latF := float64(lat) / precision
			lngF := float64(lng) / precision

			c, err := domain.NewCoordinate(latF, lngF)
			if err != nil {
				d.sink.Error(fmt.Sprintf(
					"Given polyline (%s) yielded invalid coordinate (%s, %s). %v",
					encoded, domain.FormatFloat(latF), domain.FormatFloat(lngF), err,
				))
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// decodeValue reads one zigzag encoded value starting at index and returns it
// with the index of the next unread character. Running out of input ends the
// value with whatever chunks were read.
func decodeValue(encoded string, index int) (int64, int) {
	var result uint64
	shift := uint(0)

	for index < len(encoded) {
		b := uint64(encoded[index]) - charOffset
		index++

		result |= (b & chunkMask) << shift
		shift += chunkBits

		if b&continueFlag == 0 {
			break
		}
	}

	if result&1 != 0 {
		return ^int64(result >> 1), index
	}
	return int64(result >> 1), index
}
