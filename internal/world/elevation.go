package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// baseElevationFor returns the characteristic elevation of a geology type.
// Deep ocean floor sits far below the eventual sea level; volcanic peaks
// and metamorphic cores rise well above it.
func baseElevationFor(geology Geology) float64 {
	switch geology {
	case GeoOceanicCrust:
		return -0.6
	case GeoContinentalShelf:
		return -0.2
	case GeoSedimentary:
		return 0.1
	case GeoLimestone:
		return 0.15
	case GeoSandstone:
		return 0.2
	case GeoIgneous, GeoGranite:
		return 0.4
	case GeoMetamorphic:
		return 0.6
	case GeoVolcanic:
		return 0.7
	case GeoBasalt:
		return 0.3
	default:
		return 0.0
	}
}

// generateBaseElevation replaces the provisional tectonic elevation with a
// layered one: per-geology base, ridged mountain noise confined to rock
// that actually builds mountains, a broad hill layer, and fine detail.
func (g *Generator) generateBaseElevation() {
	mountainNoise := opensimplex.New(g.seed + 2)
	hillNoise := opensimplex.New(g.seed + 3)
	detailNoise := opensimplex.New(g.seed + 4)

	for _, coord := range g.coords {
		tile := g.tiles[coord]
		x, y := noiseCoords(coord)

		elevation := baseElevationFor(tile.Geology)

		// Ridges only form on mountain-building geology.
		switch tile.Geology {
		case GeoMetamorphic, GeoIgneous, GeoGranite:
			elevation += ridgedNoise(mountainNoise, x, y, 4, 0.03) * 0.4
		}

		elevation += octaveNoise(hillNoise, x, y, 3, 0.08, 0.5) * 0.2
		elevation += octaveNoise(detailNoise, x, y, 2, 0.2, 0.5) * 0.1

		tile.Elevation = clamp(elevation, -1.0, 1.0)
	}
}

// applyErosion runs a single slope-proportional relaxation pass: land cells
// standing above their mean neighbor elevation lose a fraction of the
// excess. One pass is intentional; the goal is softened peaks, not a
// converged fluid simulation.
func (g *Generator) applyErosion() {
	erosion := make(map[HexCoord]float64, len(g.coords))

	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if tile.Elevation <= 0 {
			continue
		}

		sum := 0.0
		count := 0
		for _, nc := range coord.Neighbors() {
			if nt, ok := g.tiles[nc]; ok {
				sum += nt.Elevation
				count++
			}
		}
		if count == 0 {
			continue
		}

		slope := tile.Elevation - sum/float64(count)
		if slope > 0 {
			erosion[coord] = slope * 0.02
		}
	}

	for coord, amount := range erosion {
		tile := g.tiles[coord]
		tile.Elevation = tile.Elevation - amount
		if tile.Elevation < -1.0 {
			tile.Elevation = -1.0
		}
	}
}
