package services

import (
	"directions-route-service/internal/domain"
	"directions-route-service/internal/platform/logging"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteFactoryCreateRoute(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		wantMsg   string
		wantCount int
	}{
		{
			name:      "two coordinates",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633"},
			wantCount: 2,
		},
		{
			name:      "five coordinates",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633", "13.30894,52.5477", "13.3066,52.54785", "13.29709,52.54804"},
			wantCount: 5,
		},
		{
			name:      "latitude too high",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633", "85.54321,179.78901"},
			wantMsg:   `Given coordinates "85.54321,179.78901" are invalid. Latitude 85.54321 greater than allowed (85).`,
			wantCount: 2,
		},
		{
			name:      "longitude too high",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633", "84.54321,185.78901"},
			wantMsg:   `Given coordinates "84.54321,185.78901" are invalid. Longitude 185.78901 greater than allowed (180).`,
			wantCount: 2,
		},
		{
			name:      "latitude too low",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633", "-85.54321,-179.78901"},
			wantMsg:   `Given coordinates "-85.54321,-179.78901" are invalid. Latitude -85.54321 lesser than allowed (-85).`,
			wantCount: 2,
		},
		{
			name:      "longitude too low",
			items:     []string{"13.30841,52.54628", "13.30837,52.54633", "-84.54321,-185.78901"},
			wantMsg:   `Given coordinates "-84.54321,-185.78901" are invalid. Longitude -185.78901 lesser than allowed (-180).`,
			wantCount: 2,
		},
		{
			name:      "both out of range",
			items:     []string{"95,190"},
			wantMsg:   `Given coordinates "95,190" are invalid. Latitude 95 greater than allowed (85). Longitude 190 greater than allowed (180).`,
			wantCount: 0,
		},
		{
			name:      "not a pair",
			items:     []string{"lorem ipsum"},
			wantMsg:   `"lorem ipsum" are not valid coordinates.`,
			wantCount: 0,
		},
		{
			name:      "three fields",
			items:     []string{"1,2,3"},
			wantMsg:   `"1,2,3" are not valid coordinates.`,
			wantCount: 0,
		},
		{
			name:      "non numeric",
			items:     []string{"lorem, ipsum"},
			wantMsg:   `Given coordinates "lorem, ipsum" are invalid. Value "lorem" is not numeric.`,
			wantCount: 0,
		},
		{
			name:      "non numeric longitude",
			items:     []string{"50.1,NaN"},
			wantMsg:   `Given coordinates "50.1,NaN" are invalid. Value "NaN" is not numeric.`,
			wantCount: 0,
		},
		{
			name:      "spaces and exponent",
			items:     []string{" 50.1 , 8.6", "5e1,-8.6E0"},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := logging.NewCollector(nil)
			f := NewRouteFactory(WithFactorySink(sink))

			route := f.CreateRoute(tt.items)

			input := route.InputRoute()
			assert.Len(t, input, tt.wantCount)
			if tt.wantMsg != "" {
				assert.True(t, sink.Has(tt.wantMsg), "messages: %v", sink.Messages())
			} else {
				assert.Empty(t, sink.Messages())
			}
		})
	}
}

func TestRouteFactoryReportKinds(t *testing.T) {
	f := NewRouteFactory()

	route, rejected := f.CreateRouteWithReport([]string{"lorem ipsum", "50.1,8.6", "lorem, ipsum", "86,0"})

	assert.Equal(t, []domain.Coordinate{domain.MustCoordinate(50.1, 8.6)}, route.InputRoute())
	require.Len(t, rejected, 3)
	assert.ErrorIs(t, rejected[0], domain.ErrMalformedCoordinate)
	assert.ErrorIs(t, rejected[1], domain.ErrNonNumericCoordinate)
	assert.ErrorIs(t, rejected[2], domain.ErrInvalidCoordinate)
}

func TestRouteFactoryWithoutSink(t *testing.T) {
	f := NewRouteFactory(WithFactorySink(nil))

	assert.NotPanics(t, func() {
		route := f.CreateRoute([]string{"lorem ipsum", "1,1", "2,2"})
		assert.Equal(t, 1, route.RemainingCoordinateCount())
	})
}
