package world

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
)

// calibrateSeaLevel picks the elevation percentile matching the configured
// target land fraction, with optional uniform jitter. The realized land
// fraction can diverge from the target near an elevation plateau with many
// near-identical values; it is logged so callers can see the divergence.
func (g *Generator) calibrateSeaLevel() error {
	if len(g.tiles) < 2 {
		return fmt.Errorf("cannot calibrate sea level over %d tiles", len(g.tiles))
	}

	elevations := make([]float64, 0, len(g.tiles))
	for _, coord := range g.coords {
		elevations = append(elevations, g.tiles[coord].Elevation)
	}
	sort.Float64s(elevations)

	oceanPercentile := 1.0 - g.cfg.TargetLandFraction
	idx := int(float64(len(elevations)) * oceanPercentile)
	if idx > len(elevations)-1 {
		idx = len(elevations) - 1
	}

	if g.cfg.TargetLandFraction >= 1 {
		// Land is strictly above sea level, so a fully-land world needs
		// the sea just under the lowest cell.
		g.seaLevel = elevations[0] - 1e-6
	} else {
		g.seaLevel = elevations[idx]
	}

	if v := g.cfg.SeaLevelVariance; v > 0 {
		rng := rand.New(rand.NewSource(g.seed + 5))
		g.seaLevel += rng.Float64()*2*v - v
	}

	landTiles := 0
	for _, e := range elevations {
		if e > g.seaLevel {
			landTiles++
		}
	}
	actual := float64(landTiles) / float64(len(elevations))

	slog.Info("sea level calibrated",
		"sea_level", fmt.Sprintf("%.3f", g.seaLevel),
		"target_land", fmt.Sprintf("%.1f%%", g.cfg.TargetLandFraction*100),
		"actual_land", fmt.Sprintf("%.1f%%", actual*100),
	)
	return nil
}
