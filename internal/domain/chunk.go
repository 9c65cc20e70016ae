package domain

// Represents a single directions request derived from a Route.
// Waypoints keep traversal order; duplicates are preserved.
type Chunk struct {
	Origin      Coordinate
	Waypoints   []Coordinate
	Destination Coordinate
}

// Via renders each waypoint as "via:<lat>,<lng>".
func (c Chunk) Via() []string {
	out := make([]string, 0, len(c.Waypoints))
	for _, w := range c.Waypoints {
		out = append(out, "via:"+w.String())
	}
	return out
}

// Points returns origin, waypoints and destination in order.
func (c Chunk) Points() []Coordinate {
	out := make([]Coordinate, 0, len(c.Waypoints)+2)
	out = append(out, c.Origin)
	out = append(out, c.Waypoints...)
	out = append(out, c.Destination)
	return out
}
