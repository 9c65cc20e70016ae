package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(n int) []Coordinate {
	out := make([]Coordinate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, MustCoordinate(50+float64(i)/100, 8+float64(i)/100))
	}
	return out
}

func TestRouteSeeding(t *testing.T) {
	in := coords(4)
	r := NewRoute(in)

	cur, ok := r.CurrentCoordinate()
	require.True(t, ok)
	assert.Equal(t, in[0], cur)
	assert.Equal(t, 3, r.RemainingCoordinateCount())
	assert.Equal(t, in, r.InputRoute())
	assert.Empty(t, r.InterpolatedRoute())
}

func TestRouteEmptySeed(t *testing.T) {
	r := NewRoute(nil)

	_, ok := r.CurrentCoordinate()
	assert.False(t, ok)
	assert.Equal(t, 0, r.RemainingCoordinateCount())

	_, ok = r.NextCoordinate()
	assert.False(t, ok)
}

func TestRouteTraversal(t *testing.T) {
	const n = 9
	in := coords(n)
	r := NewRoute(in)

	calls := 0
	for {
		before := r.RemainingCoordinateCount()
		c, ok := r.NextCoordinate()
		if !ok {
			break
		}
		calls++
		assert.Equal(t, before-1, r.RemainingCoordinateCount())
		assert.Equal(t, in[calls], c)

		cur, _ := r.CurrentCoordinate()
		assert.Equal(t, c, cur)
	}

	assert.Equal(t, n-1, calls)
	assert.Equal(t, 0, r.RemainingCoordinateCount())

	cur, ok := r.CurrentCoordinate()
	require.True(t, ok)
	assert.Equal(t, in[n-1], cur, "exhausted route keeps its last coordinate")
}

func TestRouteReseed(t *testing.T) {
	r := NewRoute(coords(3))
	r.NextCoordinate()
	require.NoError(t, r.AddToInterpolatedRoute(coords(2)...))

	in := coords(5)
	r.SetInputRoute(in)

	cur, _ := r.CurrentCoordinate()
	assert.Equal(t, in[0], cur)
	assert.Equal(t, 4, r.RemainingCoordinateCount())
	assert.Len(t, r.InterpolatedRoute(), 2)
}

func TestRouteInputIsCopied(t *testing.T) {
	in := coords(3)
	r := NewRoute(in)
	in[1] = MustCoordinate(0, 0)

	next, ok := r.NextCoordinate()
	require.True(t, ok)
	assert.NotEqual(t, MustCoordinate(0, 0), next)
}

func TestAddToInterpolatedRouteAppendsInOrder(t *testing.T) {
	a := coords(3)
	b := []Coordinate{MustCoordinate(1, 1), MustCoordinate(2, 2)}

	r := NewRoute(nil)
	require.NoError(t, r.AddToInterpolatedRoute(a...))
	require.NoError(t, r.AddToInterpolatedRoute(b...))

	assert.Equal(t, append(append([]Coordinate{}, a...), b...), r.InterpolatedRoute())
}

func TestAddToInterpolatedRouteRejectsInvalid(t *testing.T) {
	r := NewRoute(nil)
	require.NoError(t, r.AddToInterpolatedRoute(coords(1)...))

	bad := Coordinate{lat: 120, lng: 0}
	err := r.AddToInterpolatedRoute(MustCoordinate(1, 1), bad)

	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.Contains(t, err.Error(), "element 1")
	assert.Len(t, r.InterpolatedRoute(), 1, "nothing appended on failure")
}

func TestRouteMarkRewind(t *testing.T) {
	in := coords(6)
	r := NewRoute(in)
	r.NextCoordinate()
	require.NoError(t, r.AddToInterpolatedRoute(coords(2)...))

	cp := r.Mark()
	r.NextCoordinate()
	r.NextCoordinate()
	require.NoError(t, r.AddToInterpolatedRoute(coords(4)...))

	r.Rewind(cp)

	cur, _ := r.CurrentCoordinate()
	assert.Equal(t, in[1], cur)
	assert.Equal(t, 4, r.RemainingCoordinateCount())
	assert.Len(t, r.InterpolatedRoute(), 2)
}

func TestChunkRendering(t *testing.T) {
	a := MustCoordinate(50.1, 8.6)
	b := MustCoordinate(50.2, 8.7)
	ch := Chunk{
		Origin:      a,
		Waypoints:   []Coordinate{b, b, a},
		Destination: b,
	}

	assert.Equal(t, []string{"via:50.2,8.7", "via:50.2,8.7", "via:50.1,8.6"}, ch.Via())
	assert.Equal(t, []Coordinate{a, b, b, a, b}, ch.Points())
}
