package world

import "fmt"

// Config is the immutable world-shape descriptor for one generation run.
// Interior continuous values produced by the pipeline are clamped by design,
// but top-level intent is not: out-of-range configs are rejected by Validate
// before any tile is created.
type Config struct {
	// Continental layout.
	ContinentCount      int     // >= 1 major landmasses
	ContinentSize       float64 // 0.5-2.5, scales influence radius
	ContinentSeparation float64 // 0.5-2.5, spacing between continents
	ContinentClustering float64 // 0-1, >0.5 pulls continents together

	// Ocean/land balance.
	TargetLandFraction float64 // 0-1, desired land share of the map
	SeaLevelVariance   float64 // 0-0.3, uniform jitter on calibrated sea level

	// Geological activity.
	TectonicActivity float64 // 0.5-2, mountain formation intensity
	VolcanicActivity float64 // 0-2, volcanic island formation

	// Climate modifiers.
	GlobalTemperature  float64 // 0.3-1, overall world warmth
	RainfallMultiplier float64 // 0.5-1.5, global wetness
	ClimateExtremeness float64 // 0.5-2, climate-zone variation

	// Special features.
	IslandFrequency  float64 // 0-2.5, isolated island tendency
	ArchipelagoZones int     // 0-4, island chain regions
	InlandSeas       bool    // large enclosed water bodies

	// Seed drives every noise generator and RNG in the run; identical
	// (Config, radius) pairs produce identical worlds. 0 means draw a
	// random seed (reported in the run summary).
	Seed int64
}

// DefaultConfig returns a balanced four-continent world.
func DefaultConfig() Config {
	return Config{
		ContinentCount:      4,
		ContinentSize:       1.0,
		ContinentSeparation: 1.0,
		ContinentClustering: 0.5,
		TargetLandFraction:  0.35,
		SeaLevelVariance:    0.1,
		TectonicActivity:    1.0,
		VolcanicActivity:    1.0,
		GlobalTemperature:   1.0,
		RainfallMultiplier:  0.9,
		ClimateExtremeness:  1.0,
		IslandFrequency:     1.0,
		ArchipelagoZones:    1,
		InlandSeas:          false,
	}
}

// Pangaea returns a single-supercontinent world.
func Pangaea() Config {
	cfg := DefaultConfig()
	cfg.ContinentCount = 1
	cfg.ContinentSize = 2.5
	cfg.ContinentClustering = 0.0
	cfg.TargetLandFraction = 0.45
	cfg.IslandFrequency = 0.3
	return cfg
}

// ArchipelagoWorld returns a world of scattered volcanic island chains.
func ArchipelagoWorld() Config {
	cfg := DefaultConfig()
	cfg.ContinentCount = 2
	cfg.ContinentSize = 0.6
	cfg.ContinentSeparation = 2.0
	cfg.ContinentClustering = 0.2
	cfg.TargetLandFraction = 0.25
	cfg.IslandFrequency = 2.5
	cfg.ArchipelagoZones = 4
	cfg.VolcanicActivity = 1.8
	return cfg
}

// FragmentedContinents returns many mid-sized clustered landmasses.
func FragmentedContinents() Config {
	cfg := DefaultConfig()
	cfg.ContinentCount = 7
	cfg.ContinentSize = 0.7
	cfg.ContinentSeparation = 1.5
	cfg.ContinentClustering = 0.8
	cfg.TargetLandFraction = 0.32
	cfg.IslandFrequency = 1.4
	return cfg
}

// DualSupercontinents returns two large, widely separated landmasses.
func DualSupercontinents() Config {
	cfg := DefaultConfig()
	cfg.ContinentCount = 2
	cfg.ContinentSize = 1.8
	cfg.ContinentSeparation = 2.5
	cfg.ContinentClustering = 0.1
	cfg.TargetLandFraction = 0.40
	cfg.InlandSeas = true
	return cfg
}

// MediterraneanWorld returns close-packed continents around inland seas.
func MediterraneanWorld() Config {
	cfg := DefaultConfig()
	cfg.ContinentCount = 4
	cfg.ContinentSize = 1.2
	cfg.ContinentSeparation = 0.8
	cfg.ContinentClustering = 0.9
	cfg.TargetLandFraction = 0.42
	cfg.InlandSeas = true
	cfg.TectonicActivity = 1.3
	return cfg
}

// Presets maps preset names to their constructors.
var Presets = map[string]func() Config{
	"default":              DefaultConfig,
	"pangaea":              Pangaea,
	"archipelago":          ArchipelagoWorld,
	"fragmented":           FragmentedContinents,
	"dual-supercontinents": DualSupercontinents,
	"mediterranean":        MediterraneanWorld,
}

// Validate rejects configurations outside their documented ranges.
func (c Config) Validate() error {
	if c.ContinentCount < 1 {
		return fmt.Errorf("continent count must be >= 1, got %d", c.ContinentCount)
	}
	if c.ContinentSize <= 0 {
		return fmt.Errorf("continent size must be positive, got %g", c.ContinentSize)
	}
	if c.ContinentSeparation <= 0 {
		return fmt.Errorf("continent separation must be positive, got %g", c.ContinentSeparation)
	}
	if c.ContinentClustering < 0 || c.ContinentClustering > 1 {
		return fmt.Errorf("continent clustering must be in [0,1], got %g", c.ContinentClustering)
	}
	if c.TargetLandFraction < 0 || c.TargetLandFraction > 1 {
		return fmt.Errorf("target land fraction must be in [0,1], got %g", c.TargetLandFraction)
	}
	if c.SeaLevelVariance < 0 {
		return fmt.Errorf("sea level variance must be >= 0, got %g", c.SeaLevelVariance)
	}
	if c.TectonicActivity <= 0 {
		return fmt.Errorf("tectonic activity must be positive, got %g", c.TectonicActivity)
	}
	if c.VolcanicActivity < 0 {
		return fmt.Errorf("volcanic activity must be >= 0, got %g", c.VolcanicActivity)
	}
	if c.GlobalTemperature <= 0 {
		return fmt.Errorf("global temperature must be positive, got %g", c.GlobalTemperature)
	}
	if c.RainfallMultiplier <= 0 {
		return fmt.Errorf("rainfall multiplier must be positive, got %g", c.RainfallMultiplier)
	}
	if c.ClimateExtremeness <= 0 {
		return fmt.Errorf("climate extremeness must be positive, got %g", c.ClimateExtremeness)
	}
	if c.IslandFrequency < 0 {
		return fmt.Errorf("island frequency must be >= 0, got %g", c.IslandFrequency)
	}
	if c.ArchipelagoZones < 0 {
		return fmt.Errorf("archipelago zones must be >= 0, got %d", c.ArchipelagoZones)
	}
	return nil
}
