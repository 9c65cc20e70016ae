package domain

import "fmt"

// Route is the traversal cursor over an input waypoint list.
//
// After seeding, the first input coordinate becomes the current coordinate and
// the rest are remaining. Each NextCoordinate call moves exactly one remaining
// coordinate into current. Decoded path segments are accumulated in the
// interpolated route in arrival order.
//
// A Route is owned by a single caller and is not safe for concurrent use.
type Route struct {
	input        []Coordinate
	current      Coordinate
	hasCurrent   bool
	next         int // index into input of the first remaining coordinate
	interpolated []Coordinate
}

// Checkpoint is a snapshot of the cursor taken by Mark.
type Checkpoint struct {
	next            int
	current         Coordinate
	hasCurrent      bool
	interpolatedLen int
}

func NewRoute(coords []Coordinate) *Route {
	r := &Route{}
	r.SetInputRoute(coords)
	return r
}

// SetInputRoute seeds the cursor. Seeding with an empty list leaves the route
// with no current coordinate and nothing remaining.
func (r *Route) SetInputRoute(coords []Coordinate) *Route {
	r.input = append([]Coordinate(nil), coords...)
	r.current = Coordinate{}
	r.hasCurrent = false
	r.next = 0

	if len(r.input) > 0 {
		r.current = r.input[0]
		r.hasCurrent = true
		r.next = 1
	}
	return r
}

func (r *Route) InputRoute() []Coordinate {
	return append([]Coordinate(nil), r.input...)
}

// CurrentCoordinate returns the coordinate most recently advanced to.
func (r *Route) CurrentCoordinate() (Coordinate, bool) {
	return r.current, r.hasCurrent
}

// NextCoordinate pops the head of the remaining coordinates into current.
// It returns false once the route is exhausted.
func (r *Route) NextCoordinate() (Coordinate, bool) {
	if r.next >= len(r.input) {
		return Coordinate{}, false
	}
	r.current = r.input[r.next]
	r.hasCurrent = true
	r.next++
	return r.current, true
}

func (r *Route) RemainingCoordinateCount() int {
	if r.next >= len(r.input) {
		return 0
	}
	return len(r.input) - r.next
}

// AddToInterpolatedRoute appends coords in order. Nothing is appended if any
// element fails validation.
func (r *Route) AddToInterpolatedRoute(coords ...Coordinate) error {
	for i, c := range coords {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("add to interpolated route: element %d: %w: %w", i, ErrTypeMismatch, err)
		}
	}
	r.interpolated = append(r.interpolated, coords...)
	return nil
}

func (r *Route) InterpolatedRoute() []Coordinate {
	return append([]Coordinate(nil), r.interpolated...)
}

func (r *Route) Mark() Checkpoint {
	return Checkpoint{
		next:            r.next,
		current:         r.current,
		hasCurrent:      r.hasCurrent,
		interpolatedLen: len(r.interpolated),
	}
}

// Rewind restores the cursor and drops anything interpolated after cp was taken.
func (r *Route) Rewind(cp Checkpoint) {
	r.next = cp.next
	r.current = cp.current
	r.hasCurrent = cp.hasCurrent
	if cp.interpolatedLen < len(r.interpolated) {
		r.interpolated = r.interpolated[:cp.interpolatedLen]
	}
}
