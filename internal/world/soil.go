package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// baseFertilityFor returns the agricultural base value of a biome.
// Grasslands are prime farmland; rainforest soil is rich but leached;
// deserts, tundra, and bare rock barely register.
func baseFertilityFor(b Biome) float64 {
	switch b {
	case BiomeTropicalRainforest:
		return 0.6
	case BiomeTropicalSeasonalForest:
		return 0.8
	case BiomeTropicalSavanna:
		return 0.9
	case BiomeTemperateGrassland:
		return 1.0
	case BiomeTemperateDeciduousForest:
		return 0.7
	case BiomeTemperateConiferForest:
		return 0.4
	case BiomeTaiga:
		return 0.3
	case BiomeWetland:
		return 0.8
	default:
		return 0.2
	}
}

// calculateSoilFertility combines the biome base, a river floodplain
// bonus, and a geology modifier, capped at 1.0.
func (g *Generator) calculateSoilFertility() {
	for _, coord := range g.coords {
		tile := g.tiles[coord]

		fertility := baseFertilityFor(tile.Biome)
		if tile.HasRiver {
			fertility += 0.3
		}

		switch tile.Geology {
		case GeoSedimentary:
			fertility += 0.2
		case GeoLimestone:
			fertility += 0.1
		case GeoVolcanic:
			fertility += 0.3
		}

		if fertility > 1.0 {
			fertility = 1.0
		}
		tile.SoilFertility = fertility
	}
}

// resourcesFor lists the resources a biome can host.
func resourcesFor(b Biome) []Resource {
	switch b {
	case BiomeOcean, BiomeLake:
		return []Resource{ResourceFish}
	case BiomeTemperateGrassland, BiomeTropicalSavanna:
		return []Resource{ResourceWheat, ResourceHorses, ResourceCattle}
	case BiomeAlpineTundra, BiomeMontaneForest:
		return []Resource{ResourceIron, ResourceStone, ResourceCopper, ResourceCoal}
	case BiomeTemperateDeciduousForest, BiomeTemperateConiferForest,
		BiomeTaiga, BiomeTropicalRainforest, BiomeTropicalSeasonalForest:
		return []Resource{ResourceWood, ResourceSpices, ResourceSilk}
	case BiomeHotDesert, BiomeColdDesert:
		return []Resource{ResourceOil, ResourceGold, ResourceGems}
	case BiomeTundraBarren, BiomeTundraWet:
		return []Resource{ResourceOil, ResourceIron}
	case BiomeMangrove, BiomeSaltMarsh:
		return []Resource{ResourceFish, ResourceSalt}
	default:
		return []Resource{ResourceStone}
	}
}

// placeResources runs the masked-noise gate and deterministic selection:
// the noise sample must clear a fixed threshold (admitting roughly one in
// six cells), then an additive hash of the absolute coordinates indexes the
// biome's resource list. The same coordinate always yields the same
// resource for a given biome, independent of iteration order.
func (g *Generator) placeResources() {
	resourceNoise := opensimplex.NewNormalized(g.seed + 8)

	for _, coord := range g.coords {
		tile := g.tiles[coord]

		gate := resourceNoise.Eval2(float64(coord.Q)*0.3, float64(coord.R)*0.3)
		if gate <= 0.7 {
			continue
		}

		options := resourcesFor(tile.Biome)
		idx := (absInt(coord.Q) + absInt(coord.R)*3) % len(options)
		tile.Resource = options[idx]
	}
}
