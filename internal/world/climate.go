package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// computeOceanDistances runs one multi-source breadth-first expansion from
// every ocean cell, giving each tile its hex distance to the nearest ocean.
// Computed once per run and shared by the temperature and precipitation
// stages. On an all-land map distances stay infinite, which the climate
// formulas cap harmlessly.
func (g *Generator) computeOceanDistances() {
	g.oceanDistance = make(map[HexCoord]float64, len(g.coords))

	var frontier []HexCoord
	for _, coord := range g.coords {
		if !g.land(g.tiles[coord]) {
			g.oceanDistance[coord] = 0
			frontier = append(frontier, coord)
		} else {
			g.oceanDistance[coord] = math.Inf(1)
		}
	}

	depth := 0.0
	for len(frontier) > 0 {
		depth++
		var next []HexCoord
		for _, coord := range frontier {
			for _, nc := range coord.Neighbors() {
				if d, ok := g.oceanDistance[nc]; ok && math.IsInf(d, 1) {
					g.oceanDistance[nc] = depth
					next = append(next, nc)
				}
			}
		}
		frontier = next
	}
}

// latitudeOf maps a coordinate's position on the pole-to-pole axis to a
// 0-centered latitude proxy.
func latitudeOf(coord HexCoord) float64 {
	return math.Abs(float64(coord.R) * 0.004)
}

// simulateTemperature derives each tile's annual temperature: a wide warm
// equatorial band cooling toward the poles, elevation-lapse cooling above
// sea level, a continental-extremity term growing away from the ocean, and
// noise; scaled by the global temperature multiplier.
func (g *Generator) simulateTemperature() {
	tempNoise := opensimplex.New(g.seed + 6)

	for _, coord := range g.coords {
		tile := g.tiles[coord]

		// Latitude gradient, floored so the tropics stay wide and warm.
		baseTemp := 1.0 - latitudeOf(coord)*0.8
		if baseTemp < 0.2 {
			baseTemp = 0.2
		}

		// Lapse cooling above sea level only.
		cooling := 0.0
		if tile.Elevation > g.seaLevel {
			cooling = (tile.Elevation - g.seaLevel) * 1.5
		}

		// Interiors run hotter summers and colder winters; the annual
		// mean shifts with distance from moderating water.
		continental := g.oceanDistance[coord] / 20.0
		if continental > 0.3 {
			continental = 0.3
		}

		x, y := noiseCoords(coord)
		variation := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5) * 0.1

		temperature := (baseTemp - cooling + variation + continental*0.1) * g.cfg.GlobalTemperature
		tile.Temperature = clamp(temperature, 0, 1)
	}
}

// simulatePrecipitation derives annual precipitation from a latitude-banded
// base curve (equatorial maximum, subtropical dip, temperate recovery,
// polar decline), a capped coastal-proximity bonus, orographic lift above
// the mountain threshold, and noise scaled by climate extremeness.
func (g *Generator) simulatePrecipitation() {
	precipNoise := opensimplex.New(g.seed + 7)

	for _, coord := range g.coords {
		tile := g.tiles[coord]
		lat := latitudeOf(coord)

		var latPrecip float64
		switch {
		case lat < 0.15:
			latPrecip = 0.8 - lat*0.3 // tropical
		case lat < 0.3:
			latPrecip = 0.3 + (lat-0.15)*0.8 // subtropical dip — deserts live here
		case lat < 0.5:
			latPrecip = 0.5 + (lat-0.3)*0.6 // temperate recovery
		default:
			latPrecip = 0.4 - (lat-0.5)*0.6 // polar decline
		}
		latPrecip = clamp(latPrecip, 0.1, 0.9)

		oceanDist := g.oceanDistance[coord] / 20.0
		if oceanDist > 1 {
			oceanDist = 1
		}
		coastalBonus := (1.0 - oceanDist) * 0.2

		orographic := 0.0
		if tile.Elevation > g.seaLevel+0.3 {
			orographic = 0.2
		}

		x, y := noiseCoords(coord)
		variation := octaveNoise(precipNoise, x, y, 3, 0.04, 0.5) * 0.4 * g.cfg.ClimateExtremeness

		precipitation := (latPrecip + coastalBonus + orographic + variation) * g.cfg.RainfallMultiplier
		tile.Precipitation = clamp(precipitation, 0, 1)
	}
}

// applyRainShadows casts a ray per hex direction from every sufficiently
// elevated cell. Cells along the ray that stay lower than the source by a
// margin lose precipitation by a geometrically decaying strength; the ray
// stops at the first cell that is not lower. Each cell keeps the strongest
// shadow it receives, not a sum.
func (g *Generator) applyRainShadows() {
	shadows := make(map[HexCoord]float64)

	for _, coord := range g.coords {
		source := g.tiles[coord]
		if source.Elevation <= g.seaLevel+0.3 {
			continue
		}

		for direction := 0; direction < 6; direction++ {
			shadowCoord := coord
			strength := 0.3

			for step := 1; step < 8; step++ {
				shadowCoord = shadowCoord.Step(direction)
				shadowTile, ok := g.tiles[shadowCoord]
				if !ok {
					break // off map
				}
				if shadowTile.Elevation >= source.Elevation-0.1 {
					break // hit another ridge
				}
				if strength > shadows[shadowCoord] {
					shadows[shadowCoord] = strength
				}
				strength *= 0.7
			}
		}
	}

	for coord, reduction := range shadows {
		tile := g.tiles[coord]
		tile.Precipitation = clamp(tile.Precipitation*(1.0-reduction), 0, 1)
	}
}
