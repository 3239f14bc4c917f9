package world

import "testing"

func TestHexCoordS(t *testing.T) {
	cases := []struct {
		coord HexCoord
		want  int
	}{
		{HexCoord{Q: 0, R: 0}, 0},
		{HexCoord{Q: 3, R: -1}, -2},
		{HexCoord{Q: -2, R: 5}, -3},
	}
	for _, c := range cases {
		if got := c.coord.S(); got != c.want {
			t.Errorf("S(%+v) = %d, want %d", c.coord, got, c.want)
		}
	}
}

func TestNeighborsAreDistanceOne(t *testing.T) {
	origin := HexCoord{Q: 2, R: -3}
	seen := make(map[HexCoord]bool)
	for _, n := range origin.Neighbors() {
		if Distance(origin, n) != 1 {
			t.Errorf("neighbor %+v of %+v is not adjacent", n, origin)
		}
		if seen[n] {
			t.Errorf("duplicate neighbor %+v", n)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct neighbors, got %d", len(seen))
	}
}

func TestStepMatchesNeighbors(t *testing.T) {
	origin := HexCoord{Q: -1, R: 4}
	neighbors := origin.Neighbors()
	for i := 0; i < 6; i++ {
		if got := origin.Step(i); got != neighbors[i] {
			t.Errorf("Step(%d) = %+v, want %+v", i, got, neighbors[i])
		}
	}
}

func TestOppositeEdgesMeet(t *testing.T) {
	// The edge toward neighbor i must be edge (i+3)%6 as seen from that
	// neighbor; river edge marking depends on this.
	origin := HexCoord{Q: 0, R: 0}
	for i := 0; i < 6; i++ {
		neighbor := origin.Step(i)
		back := neighbor.Step((i + 3) % 6)
		if back != origin {
			t.Errorf("direction %d: stepping back from %+v gave %+v", i, neighbor, back)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{}, HexCoord{}, 0},
		{HexCoord{}, HexCoord{Q: 3, R: 0}, 3},
		{HexCoord{}, HexCoord{Q: 2, R: -5}, 5},
		{HexCoord{Q: -2, R: 1}, HexCoord{Q: 3, R: -1}, 5},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%+v, %+v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); got != c.want {
			t.Errorf("Distance is not symmetric for %+v, %+v", c.a, c.b)
		}
	}
}
