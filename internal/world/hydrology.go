package world

import (
	"fmt"
	"log/slog"
	"sort"
)

// computeDrainage derives each tile's 0-1 drainage from its geology and
// local slope. Drainage is a permeability-like property, distinct from
// slope-driven flow; poorly drained wet cells become wetlands later.
func (g *Generator) computeDrainage() {
	for _, coord := range g.coords {
		tile := g.tiles[coord]

		var base float64
		switch tile.Geology {
		case GeoLimestone:
			base = 0.9 // karst, highly permeable
		case GeoSandstone:
			base = 0.7
		case GeoSedimentary:
			base = 0.5
		case GeoIgneous, GeoGranite:
			base = 0.3
		case GeoMetamorphic:
			base = 0.4
		case GeoVolcanic:
			base = 0.8
		case GeoBasalt:
			base = 0.6
		default:
			base = 0.5
		}

		totalSlope := 0.0
		count := 0
		for _, nc := range coord.Neighbors() {
			if nt, ok := g.tiles[nc]; ok {
				slope := tile.Elevation - nt.Elevation
				if slope < 0 {
					slope = -slope
				}
				totalSlope += slope
				count++
			}
		}

		avgSlope := 0.0
		if count > 0 {
			avgSlope = totalSlope / float64(count)
		}
		bonus := avgSlope * 2.0
		if bonus > 0.3 {
			bonus = 0.3
		}

		tile.Drainage = clamp(base+bonus, 0, 1)
	}
}

// calculateFlowDirections picks, for every land cell, the strictly lowest
// neighbor as its drain. Cells with no strictly lower neighbor get no
// entry; those are endorheic basin candidates.
func (g *Generator) calculateFlowDirections() {
	g.flowDirections = make(map[HexCoord]flowTarget)

	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if !g.land(tile) {
			continue
		}

		lowest := tile.Elevation
		found := false
		var best flowTarget
		for i, nc := range coord.Neighbors() {
			if nt, ok := g.tiles[nc]; ok && nt.Elevation < lowest {
				lowest = nt.Elevation
				best = flowTarget{Direction: i, Target: nc}
				found = true
			}
		}
		if found {
			g.flowDirections[coord] = best
		}
	}
}

// calculateFlowAccumulation propagates water downhill. Every land cell
// starts with one unit; processing in descending elevation order, each cell
// with a flow direction hands its accumulation plus a precipitation-scaled
// bonus to its target. Because every cell drains to a strictly lower
// neighbor, the flow graph is a downhill forest and one pass suffices.
func (g *Generator) calculateFlowAccumulation() error {
	g.flowAccumulation = make(map[HexCoord]float64)

	for _, coord := range g.coords {
		if g.land(g.tiles[coord]) {
			g.flowAccumulation[coord] = 1.0
		}
	}

	for _, coord := range g.coordsByElevationDesc() {
		ft, ok := g.flowDirections[coord]
		if !ok {
			continue
		}
		if _, exists := g.tiles[ft.Target]; !exists {
			return fmt.Errorf("flow direction from %+v references missing tile %+v", coord, ft.Target)
		}

		tile := g.tiles[coord]
		g.flowAccumulation[ft.Target] += g.flowAccumulation[coord] + tile.Precipitation*0.5
	}

	return nil
}

// generateRiverNetwork promotes high-accumulation cells to rivers. The base
// threshold drops for wet cells and for steep mountainous ones, so rivers
// start higher and denser where physically expected.
func (g *Generator) generateRiverNetwork() {
	riverTiles := 0
	for _, coord := range g.coords {
		flow, ok := g.flowAccumulation[coord]
		if !ok {
			continue
		}
		tile := g.tiles[coord]
		if !g.land(tile) {
			continue // ocean cells receive flow but never become rivers
		}

		precipFactor := 1.0 - tile.Precipitation*0.5
		if precipFactor < 0.3 {
			precipFactor = 0.3
		}
		elevationFactor := 1.0
		if tile.Elevation > g.seaLevel+0.3 {
			elevationFactor = 0.8
		}

		const baseThreshold = 4.0
		if flow >= baseThreshold*precipFactor*elevationFactor {
			tile.HasRiver = true
			riverTiles++
		}
	}
	slog.Info("river network generated", "river_tiles", riverTiles)
}

// calculateRiverFlowRates normalizes river flow against the run maximum
// (floored at 0.1 so even the smallest river is visible) and marks river
// edges along flow directions.
func (g *Generator) calculateRiverFlowRates() {
	maxFlow := 0.0
	for _, flow := range g.flowAccumulation {
		if flow > maxFlow {
			maxFlow = flow
		}
	}

	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if !tile.HasRiver {
			tile.RiverFlow = 0
			tile.RiverEdges = [6]bool{}
			continue
		}
		flow := g.flowAccumulation[coord]
		tile.RiverFlow = clamp(flow/maxFlow, 0.1, 1.0)
	}

	g.setRiverEdges()
}

// setRiverEdges marks the shared edge on each river cell touching a flow
// edge. Edge flags live only on river cells, so a tile without a river
// never carries river edges.
func (g *Generator) setRiverEdges() {
	for source, ft := range g.flowDirections {
		sourceTile := g.tiles[source]
		targetTile := g.tiles[ft.Target]
		if sourceTile == nil || targetTile == nil {
			continue
		}
		if !sourceTile.HasRiver && !targetTile.HasRiver {
			continue
		}
		if sourceTile.HasRiver {
			sourceTile.RiverEdges[ft.Direction] = true
		}
		if targetTile.HasRiver {
			targetTile.RiverEdges[(ft.Direction+3)%6] = true
		}
	}
}

// markCoastalTiles flags land cells adjacent to at least one ocean cell.
func (g *Generator) markCoastalTiles() {
	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if !g.land(tile) {
			continue
		}
		for _, nc := range coord.Neighbors() {
			if nt, ok := g.tiles[nc]; ok && !g.land(nt) {
				tile.IsCoastal = true
				break
			}
		}
	}
}

// biomeRiverThreshold returns the accumulation needed for the biome-aware
// refinement pass to promote a cell to a river. Rainforests expect dense
// river networks; deserts expect almost none.
func biomeRiverThreshold(b Biome) float64 {
	switch b {
	case BiomeTropicalRainforest:
		return 2.0
	case BiomeTemperateRainforest:
		return 2.5
	case BiomeTropicalSeasonalForest, BiomeTemperateDeciduousForest:
		return 3.0
	case BiomeTemperateGrassland, BiomeTaiga:
		return 3.5
	case BiomeTemperateConiferForest:
		return 4.0
	case BiomeTundraWet, BiomeWetland:
		return 3.0
	case BiomeShrubland:
		return 6.0
	case BiomeHotDesert, BiomeColdDesert:
		return 12.0
	case BiomeTundraBarren:
		return 8.0
	default:
		return 5.0
	}
}

// refineRiverNetwork runs after biome classification: physically derived
// density alone underfits biome expectations, so a second, biome-specific
// threshold table promotes additional cells.
func (g *Generator) refineRiverNetwork() {
	added := 0
	for _, coord := range g.coords {
		flow, ok := g.flowAccumulation[coord]
		if !ok {
			continue
		}
		tile := g.tiles[coord]
		if tile.HasRiver || !g.land(tile) {
			continue
		}
		if flow >= biomeRiverThreshold(tile.Biome) {
			tile.HasRiver = true
			added++
		}
	}

	if added > 0 {
		slog.Info("river network refined", "added", added)
		g.calculateRiverFlowRates()
	}
}

// lakeCandidate scores a potential lake site: depression depth plus a bonus
// per inward-flowing neighbor.
type lakeCandidate struct {
	coord HexCoord
	score float64
}

// placeLakes commits lakes at genuine convergent depressions: land cells
// just above sea level with most neighbors higher, a real depression, and
// at least two neighbors draining into them. Ranked candidates are placed
// up to a cap with a minimum spacing between lakes.
func (g *Generator) placeLakes() {
	const (
		maxLakes   = 25
		minSpacing = 6
	)

	var candidates []lakeCandidate
	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if tile.Elevation <= g.seaLevel || tile.Elevation >= g.seaLevel+0.3 {
			continue
		}

		higher := 0
		sum := 0.0
		count := 0
		for _, nc := range coord.Neighbors() {
			if nt, ok := g.tiles[nc]; ok {
				if nt.Elevation > tile.Elevation {
					higher++
				}
				sum += nt.Elevation
				count++
			}
		}
		if count == 0 {
			continue
		}
		depth := sum/float64(count) - tile.Elevation

		inflows := 0
		for _, nc := range coord.Neighbors() {
			if ft, ok := g.flowDirections[nc]; ok && ft.Target == coord {
				inflows++
			}
		}

		if higher >= 4 && depth > 0.05 && inflows >= 2 {
			candidates = append(candidates, lakeCandidate{
				coord: coord,
				score: depth + float64(inflows)*0.1,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].coord.Q != candidates[j].coord.Q {
			return candidates[i].coord.Q < candidates[j].coord.Q
		}
		return candidates[i].coord.R < candidates[j].coord.R
	})

	var placed []HexCoord
	for _, cand := range candidates {
		if len(placed) >= maxLakes {
			break
		}
		tooClose := false
		for _, lake := range placed {
			if Distance(cand.coord, lake) < minSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		g.tiles[cand.coord].Biome = BiomeLake
		placed = append(placed, cand.coord)
	}

	slog.Info("lakes placed", "count", len(placed), "candidates", len(candidates))
}
