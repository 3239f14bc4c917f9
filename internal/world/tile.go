package world

// Geology classifies the rock formation underlying a tile.
// Set during the tectonic stage and never changed afterwards.
type Geology uint8

const (
	GeoOceanicCrust     Geology = iota // Deep ocean floor
	GeoContinentalShelf                // Shallow seas fringing land
	GeoSedimentary                     // Stable platform, low plains
	GeoIgneous                         // Highlands
	GeoMetamorphic                     // Mountain-building cores
	GeoVolcanic                        // Volcanic islands and peaks
	GeoLimestone                       // Permeable, karst-prone
	GeoSandstone                       // Plateaus
	GeoGranite                         // Continental cores
	GeoBasalt                          // Volcanic plains
)

// GeologyName returns a human-readable name for a geology type.
func GeologyName(g Geology) string {
	switch g {
	case GeoOceanicCrust:
		return "Oceanic Crust"
	case GeoContinentalShelf:
		return "Continental Shelf"
	case GeoSedimentary:
		return "Sedimentary"
	case GeoIgneous:
		return "Igneous"
	case GeoMetamorphic:
		return "Metamorphic"
	case GeoVolcanic:
		return "Volcanic"
	case GeoLimestone:
		return "Limestone"
	case GeoSandstone:
		return "Sandstone"
	case GeoGranite:
		return "Granite"
	case GeoBasalt:
		return "Basalt"
	default:
		return "Unknown"
	}
}

// Biome classifies a tile's climate/terrain category. BiomeUnset marks a
// tile the classification stage has not reached yet; lakes are assigned
// directly by the hydrology stage and bypass the rule table.
type Biome uint8

const (
	BiomeUnset Biome = iota

	// Aquatic
	BiomeOcean
	BiomeLake

	// Cold
	BiomeTundraBarren
	BiomeTundraWet
	BiomeTaiga

	// Temperate
	BiomeTemperateGrassland
	BiomeTemperateDeciduousForest
	BiomeTemperateConiferForest
	BiomeTemperateRainforest

	// Warm / hot
	BiomeTropicalSavanna
	BiomeTropicalSeasonalForest
	BiomeTropicalRainforest

	// Dry
	BiomeColdDesert
	BiomeHotDesert
	BiomeShrubland

	// High altitude
	BiomeAlpineTundra
	BiomeMontaneForest

	// Coastal / wetland
	BiomeMangrove
	BiomeSaltMarsh
	BiomeWetland
)

// BiomeName returns a human-readable name for a biome.
func BiomeName(b Biome) string {
	switch b {
	case BiomeUnset:
		return "Unset"
	case BiomeOcean:
		return "Ocean"
	case BiomeLake:
		return "Lake"
	case BiomeTundraBarren:
		return "Barren Tundra"
	case BiomeTundraWet:
		return "Wet Tundra"
	case BiomeTaiga:
		return "Taiga"
	case BiomeTemperateGrassland:
		return "Temperate Grassland"
	case BiomeTemperateDeciduousForest:
		return "Temperate Deciduous Forest"
	case BiomeTemperateConiferForest:
		return "Temperate Conifer Forest"
	case BiomeTemperateRainforest:
		return "Temperate Rainforest"
	case BiomeTropicalSavanna:
		return "Tropical Savanna"
	case BiomeTropicalSeasonalForest:
		return "Tropical Seasonal Forest"
	case BiomeTropicalRainforest:
		return "Tropical Rainforest"
	case BiomeColdDesert:
		return "Cold Desert"
	case BiomeHotDesert:
		return "Hot Desert"
	case BiomeShrubland:
		return "Shrubland"
	case BiomeAlpineTundra:
		return "Alpine Tundra"
	case BiomeMontaneForest:
		return "Montane Forest"
	case BiomeMangrove:
		return "Mangrove"
	case BiomeSaltMarsh:
		return "Salt Marsh"
	case BiomeWetland:
		return "Wetland"
	default:
		return "Unknown"
	}
}

// Resource enumerates strategic/luxury resources a tile may carry.
// ResourceNone means the masked-noise gate did not fire for the tile.
type Resource uint8

const (
	ResourceNone Resource = iota
	ResourceGold
	ResourceIron
	ResourceWheat
	ResourceFish
	ResourceStone
	ResourceWood
	ResourceOil
	ResourceHorses
	ResourceGems
	ResourceCopper
	ResourceCoal
	ResourceCattle
	ResourceSpices
	ResourceSilk
	ResourceWine
	ResourceSalt
)

// ResourceName returns a human-readable name for a resource.
func ResourceName(r Resource) string {
	names := [...]string{
		"None", "Gold", "Iron", "Wheat", "Fish", "Stone", "Wood", "Oil",
		"Horses", "Gems", "Copper", "Coal", "Cattle", "Spices", "Silk",
		"Wine", "Salt",
	}
	if int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// StrategicFeature names a geographic formation consumed by downstream
// gameplay scoring. The generator leaves this at FeatureNone; downstream
// systems derive features from the finished terrain.
type StrategicFeature uint8

const (
	FeatureNone StrategicFeature = iota
	FeatureRiverDelta
	FeaturePeninsula
	FeatureCape
	FeatureStrait
	FeatureNaturalHarbor
	FeatureMountainPass
	FeatureCanyon
	FeatureIslandChain
	FeaturePlateau
	FeatureIsthmus
	FeatureBay
	FeatureFjord
	FeatureDesertOasis
	FeatureRiverFord
	FeatureHighlandFortress
)

// Tile is the per-cell record and terminal output of the pipeline. Each
// stage writes only the fields it owns; once Generate returns, tiles are
// read-only data for the rendering and game-state layers.
type Tile struct {
	Coord HexCoord `json:"coord"`

	// Elevation in roughly -1..1; seeded by tectonics, refined by the
	// elevation/erosion stage, interpreted against SeaLevel afterwards.
	Elevation float64 `json:"elevation"`

	Geology Geology `json:"geology"`
	Biome   Biome   `json:"biome"`

	// Hydrology.
	HasRiver   bool    `json:"has_river"`
	RiverFlow  float64 `json:"river_flow"`  // 0..1, 0 unless HasRiver
	RiverEdges [6]bool `json:"river_edges"` // indexed by hex direction
	IsCoastal  bool    `json:"is_coastal"`

	// Climate and soils, each 0..1.
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	Drainage      float64 `json:"drainage"`
	SoilFertility float64 `json:"soil_fertility"`

	Resource Resource `json:"resource"`

	// Strategic geography. Partially populated here; trade value and the
	// named feature are filled in by downstream systems.
	StrategicFeature StrategicFeature `json:"strategic_feature"`
	Defensibility    float64          `json:"defensibility"`
	TradeValue       float64          `json:"trade_value"`
	FloodRisk        float64          `json:"flood_risk"`
	NavalAccess      float64          `json:"naval_access"`
}
