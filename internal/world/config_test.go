package world

import "testing"

func TestPresetsValidate(t *testing.T) {
	for name, makeConfig := range Presets {
		if err := makeConfig().Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", name, err)
		}
	}
}

func TestConfigValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero continents", func(c *Config) { c.ContinentCount = 0 }},
		{"negative continent size", func(c *Config) { c.ContinentSize = -1 }},
		{"zero separation", func(c *Config) { c.ContinentSeparation = 0 }},
		{"clustering above one", func(c *Config) { c.ContinentClustering = 1.5 }},
		{"land fraction above one", func(c *Config) { c.TargetLandFraction = 1.2 }},
		{"negative land fraction", func(c *Config) { c.TargetLandFraction = -0.1 }},
		{"negative sea variance", func(c *Config) { c.SeaLevelVariance = -0.2 }},
		{"zero tectonic activity", func(c *Config) { c.TectonicActivity = 0 }},
		{"negative volcanic activity", func(c *Config) { c.VolcanicActivity = -1 }},
		{"zero temperature", func(c *Config) { c.GlobalTemperature = 0 }},
		{"zero rainfall", func(c *Config) { c.RainfallMultiplier = 0 }},
		{"zero extremeness", func(c *Config) { c.ClimateExtremeness = 0 }},
		{"negative island frequency", func(c *Config) { c.IslandFrequency = -0.5 }},
		{"negative archipelago zones", func(c *Config) { c.ArchipelagoZones = -1 }},
	}

	for _, c := range cases {
		cfg := DefaultConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}

func TestExtremeLandFractionsAreValid(t *testing.T) {
	// f=0 (all ocean) and f=1 (all land) are degenerate outcomes, not
	// configuration errors.
	for _, f := range []float64{0, 1} {
		cfg := DefaultConfig()
		cfg.TargetLandFraction = f
		if err := cfg.Validate(); err != nil {
			t.Errorf("land fraction %g should validate: %v", f, err)
		}
	}
}

func TestNewGeneratorRejectsDegenerateRadius(t *testing.T) {
	for _, radius := range []int{0, -1, -100} {
		if _, err := NewGenerator(radius, DefaultConfig()); err == nil {
			t.Errorf("radius %d: expected error, got nil", radius)
		}
	}
	if _, err := NewGenerator(1, DefaultConfig()); err != nil {
		t.Errorf("radius 1 should be accepted: %v", err)
	}
}
