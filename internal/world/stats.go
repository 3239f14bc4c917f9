package world

// Summary reports counts and ratios for a finished world. Degenerate
// emergent outcomes — an all-ocean map, zero rivers — are not errors, but
// they must be observable here so callers can detect pathological
// configurations without a crash.
type Summary struct {
	TotalTiles   int
	LandTiles    int
	LandFraction float64
	RiverTiles   int
	LakeTiles    int
	CoastalTiles int

	BiomeCounts   map[Biome]int
	GeologyCounts map[Geology]int
}

// Summarize tallies the world's tiles.
func (w *World) Summarize() Summary {
	sum := Summary{
		TotalTiles:    len(w.Tiles),
		BiomeCounts:   make(map[Biome]int),
		GeologyCounts: make(map[Geology]int),
	}

	for _, tile := range w.Tiles {
		sum.BiomeCounts[tile.Biome]++
		sum.GeologyCounts[tile.Geology]++
		if tile.Elevation > w.SeaLevel {
			sum.LandTiles++
		}
		if tile.HasRiver {
			sum.RiverTiles++
		}
		if tile.Biome == BiomeLake {
			sum.LakeTiles++
		}
		if tile.IsCoastal {
			sum.CoastalTiles++
		}
	}

	if sum.TotalTiles > 0 {
		sum.LandFraction = float64(sum.LandTiles) / float64(sum.TotalTiles)
	}
	return sum
}
