package world

// assignBiomes classifies every tile. Ocean is purely a function of the
// calibrated sea level; land goes through the classification table. Tiles
// already holding a biome (lakes) are left alone.
func (g *Generator) assignBiomes() {
	for _, coord := range g.coords {
		tile := g.tiles[coord]
		if tile.Biome != BiomeUnset {
			continue
		}
		if tile.Elevation <= g.seaLevel {
			tile.Biome = BiomeOcean
		} else {
			tile.Biome = g.classifyLand(tile)
		}
	}
}

// classifyLand is the terrestrial rule table: high-elevation overrides
// first, then wetland overrides, then a total temperature-banded and
// precipitation-banded decision table in the manner of a Whittaker diagram.
// Every input combination maps to exactly one biome.
func (g *Generator) classifyLand(tile *Tile) Biome {
	temp := tile.Temperature
	precip := tile.Precipitation
	aboveSea := tile.Elevation - g.seaLevel

	// High altitude.
	if aboveSea > 0.6 {
		return BiomeAlpineTundra
	}
	if aboveSea > 0.4 && temp < 0.6 {
		return BiomeMontaneForest
	}

	// Wetlands: poorly drained and wet. Coastal ones split by warmth.
	if tile.Drainage < 0.3 && precip > 0.6 && tile.IsCoastal {
		if temp > 0.7 {
			return BiomeMangrove
		}
		return BiomeSaltMarsh
	}
	if tile.Drainage < 0.4 && precip > 0.7 {
		return BiomeWetland
	}

	switch {
	case temp < 0.2: // polar
		if precip > 0.4 {
			return BiomeTundraWet
		}
		return BiomeTundraBarren

	case temp < 0.4: // boreal
		if precip > 0.2 {
			return BiomeTaiga
		}
		return BiomeColdDesert

	case temp < 0.6: // cool temperate
		switch {
		case precip > 0.7:
			return BiomeTemperateRainforest
		case precip > 0.5:
			return BiomeTemperateDeciduousForest
		case precip > 0.3:
			return BiomeTemperateConiferForest
		case precip > 0.15:
			return BiomeTemperateGrassland
		default:
			return BiomeColdDesert
		}

	case temp < 0.8: // warm temperate / subtropical
		switch {
		case precip > 0.7:
			return BiomeTropicalSeasonalForest
		case precip > 0.5:
			return BiomeTemperateDeciduousForest
		case precip > 0.3:
			return BiomeTemperateGrassland
		case precip > 0.15:
			return BiomeShrubland
		default:
			return BiomeHotDesert
		}

	default: // tropical
		switch {
		case precip > 0.7:
			return BiomeTropicalRainforest
		case precip > 0.4:
			return BiomeTropicalSeasonalForest
		case precip > 0.2:
			return BiomeTropicalSavanna
		case precip > 0.1:
			return BiomeShrubland
		default:
			return BiomeHotDesert
		}
	}
}
