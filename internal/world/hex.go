// Package world implements the procedural planet generator: a hex grid of
// tiles built up through tectonic, hydrological, climatic, and ecological
// stages. Uses axial coordinates (q, r) for the hex grid.
package world

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// HexNeighborDirections defines the six neighbor offsets in axial coordinates.
// Direction indices are shared with Tile.RiverEdges: the edge toward
// neighbor i is edge i, and the opposite edge is (i+3)%6.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = HexCoord{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Step returns the coordinate one hex away in the given direction index.
func (h HexCoord) Step(direction int) HexCoord {
	dir := HexNeighborDirections[direction%6]
	return HexCoord{Q: h.Q + dir.Q, R: h.R + dir.R}
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	ds := a.S() - b.S()
	if dq < 0 {
		dq = -dq
	}
	if dr < 0 {
		dr = -dr
	}
	if ds < 0 {
		ds = -ds
	}
	// Max of the three absolute differences in cube coordinates.
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}
