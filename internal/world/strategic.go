package world

// seedStrategicAttributes fills the strategic-geography fields the
// generator can derive from finished terrain: defensibility, flood risk,
// and naval access. Trade value and named strategic features are left for
// downstream systems that know about units, cities, and routes.
func (g *Generator) seedStrategicAttributes() {
	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if !g.land(tile) {
			continue
		}

		// Elevation advantage, fresh water as a moat, coastline as an
		// extra approach, forest as concealment.
		defensibility := 0.3
		elevBonus := tile.Elevation * 0.5
		if elevBonus > 0.4 {
			elevBonus = 0.4
		}
		defensibility += elevBonus
		if tile.HasRiver {
			defensibility += 0.2
		}
		if tile.IsCoastal {
			defensibility -= 0.1
		}
		switch tile.Biome {
		case BiomeTropicalRainforest, BiomeTemperateDeciduousForest:
			defensibility += 0.2
		}
		tile.Defensibility = clamp(defensibility, 0, 1)

		// Floodplains: river cells near sea level in wet climates.
		floodRisk := 0.0
		if tile.HasRiver {
			floodRisk = 0.3 + tile.RiverFlow*0.4
			if tile.Elevation-g.seaLevel < 0.1 {
				floodRisk += 0.2
			}
		}
		switch tile.Biome {
		case BiomeWetland, BiomeMangrove, BiomeSaltMarsh:
			floodRisk += 0.2
		}
		tile.FloodRisk = clamp(floodRisk, 0, 1)

		// Coastal cells have naval reach; a river mouth adds to it.
		if tile.IsCoastal {
			navalAccess := 0.6
			if tile.HasRiver {
				navalAccess += tile.RiverFlow * 0.4
			}
			tile.NavalAccess = clamp(navalAccess, 0, 1)
		}
	}
}
