package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// generateTectonicStructure lays the geological foundation: continental
// seeds, an influence field decaying away from them, ridged plate-boundary
// noise, and volcanic island formation. Every valid coordinate gets its
// tile here, with geology classified and a provisional elevation that the
// elevation stage refines.
func (g *Generator) generateTectonicStructure() {
	plateNoise := opensimplex.New(g.seed)
	centers := g.continentCenters(rand.New(rand.NewSource(g.seed + 1)))

	influenceRadius := 40.0 * g.cfg.ContinentSize
	plateScale := 0.02 * g.cfg.TectonicActivity
	volcanicThreshold := 0.8 * (2.0 - g.cfg.VolcanicActivity)

	for q := -g.radius; q <= g.radius; q++ {
		r1 := maxInt(-g.radius, -q-g.radius)
		r2 := minInt(g.radius, -q+g.radius)
		for r := r1; r <= r2; r++ {
			coord := HexCoord{Q: q, R: r}

			// Distance to the nearest continental seed drives an
			// exponential-decay influence field.
			minDist := math.Inf(1)
			for _, center := range centers {
				if d := float64(Distance(coord, center)); d < minDist {
					minDist = d
				}
			}
			influence := math.Exp(-minDist / influenceRadius)

			x, y := noiseCoords(coord)
			plateValue := ridgedNoise(plateNoise, x, y, 3, plateScale)

			base := influence*0.7 + plateValue*0.3

			// Volcanic islands form where plate boundaries are violent
			// but the base value is still oceanic.
			volcanic := 0.0
			if plateValue > volcanicThreshold && base < 0.2 {
				volcanic = 0.4 * g.cfg.VolcanicActivity
			}

			combined := base + volcanic

			var geology Geology
			switch {
			case combined > 0.3:
				switch {
				case plateValue > 0.6:
					geology = GeoGranite // Continental core
				case plateValue > 0.3:
					geology = GeoMetamorphic // Mountain building
				default:
					geology = GeoSedimentary // Stable platform
				}
			case combined > 0.1:
				geology = GeoContinentalShelf
			case volcanic > 0:
				geology = GeoVolcanic
			default:
				geology = GeoOceanicCrust
			}

			g.addTile(&Tile{
				Coord:     coord,
				Elevation: combined, // provisional, refined next stage
				Geology:   geology,
				Drainage:  0.5,
			})
		}
	}
}

// continentCenters places continental seeds according to the configured
// count, separation, and clustering, plus extra three-seed clusters per
// archipelago zone.
func (g *Generator) continentCenters(rng *rand.Rand) []HexCoord {
	var centers []HexCoord

	// Margin keeps seeds clear of the map edge; shrinks on small maps.
	margin := 20
	if margin > g.radius/2 {
		margin = g.radius / 2
	}

	switch count := g.cfg.ContinentCount; count {
	case 1:
		// Single supercontinent.
		centers = append(centers, HexCoord{})
	case 2:
		separation := int(float64(g.radius) * 0.6 * g.cfg.ContinentSeparation)
		if separation < 20 {
			separation = 20
		}
		if separation > 2*(g.radius-margin) {
			separation = 2 * (g.radius - margin)
		}
		centers = append(centers,
			HexCoord{Q: -separation / 2},
			HexCoord{Q: separation / 2})
	default:
		// Seeds evenly spaced on a circle, pulled together or pushed
		// apart by the clustering factor, then jittered.
		baseRadius := float64(g.radius) * 0.4 * g.cfg.ContinentSeparation
		if baseRadius < 20 {
			baseRadius = 20
		}
		cluster := g.cfg.ContinentClustering

		for i := 0; i < count; i++ {
			angle := float64(i) / float64(count) * 2 * math.Pi
			q := baseRadius * math.Cos(angle)
			r := baseRadius * math.Sin(angle)

			if cluster > 0.5 {
				offset := (cluster - 0.5) * 2.0
				q *= 1.0 - offset*0.5
				r *= 1.0 - offset*0.5
			} else {
				spread := (0.5 - cluster) * 2.0
				q *= 1.0 + spread
				r *= 1.0 + spread
			}

			qi := int(q) + rng.Intn(21) - 10
			ri := int(r) + rng.Intn(21) - 10

			qi = clampInt(qi, -g.radius+margin, g.radius-margin)
			ri = clampInt(ri, -g.radius+margin, g.radius-margin)

			centers = append(centers, HexCoord{Q: qi, R: ri})
		}
	}

	// Archipelago zones: a ring position per zone, three island seeds
	// clustered around it.
	for i := 0; i < g.cfg.ArchipelagoZones; i++ {
		angle := rng.Float64() * 2 * math.Pi
		zoneRadius := float64(g.radius) * 0.7
		zq := int(zoneRadius * math.Cos(angle))
		zr := int(zoneRadius * math.Sin(angle))

		for j := 0; j < 3; j++ {
			subAngle := float64(j) / 3.0 * 2 * math.Pi
			subQ := zq + int(15*math.Cos(subAngle))
			subR := zr + int(15*math.Sin(subAngle))

			if absInt(subQ) < g.radius-10 && absInt(subR) < g.radius-10 {
				centers = append(centers, HexCoord{Q: subQ, R: subR})
			}
		}
	}

	return centers
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
