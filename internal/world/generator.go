package world

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
)

// World is the finished output of a generation run: one tile per valid
// coordinate plus the calibrated sea level. Read-only data for the
// rendering and game-state layers.
type World struct {
	Radius   int
	Seed     int64
	SeaLevel float64
	Config   Config
	Tiles    map[HexCoord]*Tile
}

// Get returns the tile at the given coordinate, or nil if out of bounds.
func (w *World) Get(coord HexCoord) *Tile {
	return w.Tiles[coord]
}

// TileCount returns the total number of tiles. A grid of radius R holds
// 3R²+3R+1 tiles.
func (w *World) TileCount() int {
	return len(w.Tiles)
}

// InBounds reports whether the coordinate is within the map radius.
func (w *World) InBounds(coord HexCoord) bool {
	return Distance(coord, HexCoord{}) <= w.Radius
}

// flowTarget records the downhill neighbor a cell drains into, along with
// the hex direction index of the edge between them.
type flowTarget struct {
	Direction int
	Target    HexCoord
}

// Generator runs the multi-phase pipeline. Working state (flow directions,
// flow accumulation, ocean distances) lives here and is discarded once the
// stages that need it have run; it is never part of the tile schema.
type Generator struct {
	radius   int
	cfg      Config
	seed     int64
	seaLevel float64

	tiles map[HexCoord]*Tile

	// coords holds every valid coordinate in a fixed (q, r) order so that
	// RNG draws, float accumulation, and tie-breaking are reproducible.
	coords []HexCoord

	flowDirections   map[HexCoord]flowTarget
	flowAccumulation map[HexCoord]float64
	oceanDistance    map[HexCoord]float64
}

// NewGenerator validates the configuration and prepares a generator for the
// given map radius. The default radius of 100 yields 30,301 tiles.
func NewGenerator(radius int, cfg Config) (*Generator, error) {
	if radius < 1 {
		return nil, fmt.Errorf("map radius must be >= 1, got %d", radius)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Generator{
		radius: radius,
		cfg:    cfg,
		tiles:  make(map[HexCoord]*Tile),
	}, nil
}

// Generate runs every stage in order and returns the finished world.
// The pipeline is a pure one-shot transform: it either completes or fails
// on the first invariant violation, never emitting partial tiles.
func (g *Generator) Generate() (*World, error) {
	g.seed = g.cfg.Seed
	if g.seed == 0 {
		g.seed = rand.Int63()
	}

	// Phase 1: geological foundation.
	slog.Info("generating tectonic structure", "radius", g.radius, "seed", g.seed)
	g.generateTectonicStructure()
	g.generateBaseElevation()
	g.applyErosion()
	if err := g.calibrateSeaLevel(); err != nil {
		return nil, err
	}

	// Phase 2: hydrological cycle.
	slog.Info("simulating hydrology")
	g.computeDrainage()
	g.calculateFlowDirections()
	if err := g.calculateFlowAccumulation(); err != nil {
		return nil, err
	}
	g.generateRiverNetwork()
	g.calculateRiverFlowRates()
	g.markCoastalTiles()

	// Phase 3: climate.
	slog.Info("simulating climate")
	g.computeOceanDistances()
	g.simulateTemperature()
	g.simulatePrecipitation()
	g.applyRainShadows()

	// Phase 4: ecology. River refinement and lakes read the hydrology
	// working maps, so those are only discarded afterwards.
	slog.Info("assigning biomes")
	g.assignBiomes()
	g.refineRiverNetwork()
	g.placeLakes()
	g.flowDirections = nil
	g.flowAccumulation = nil
	g.oceanDistance = nil

	// Phase 5: soils, resources, strategic seeding.
	slog.Info("placing soils and resources")
	g.calculateSoilFertility()
	g.placeResources()
	g.seedStrategicAttributes()

	w := &World{
		Radius:   g.radius,
		Seed:     g.seed,
		SeaLevel: g.seaLevel,
		Config:   g.cfg,
		Tiles:    g.tiles,
	}
	sum := w.Summarize()
	slog.Info("world generation complete",
		"tiles", sum.TotalTiles,
		"land_fraction", fmt.Sprintf("%.3f", sum.LandFraction),
		"rivers", sum.RiverTiles,
		"lakes", sum.LakeTiles,
	)
	return w, nil
}

// addTile registers a freshly created tile, keeping the deterministic
// coordinate ordering in sync with the tile map.
func (g *Generator) addTile(t *Tile) {
	g.tiles[t.Coord] = t
	g.coords = append(g.coords, t.Coord)
}

// land reports whether a tile sits above the calibrated sea level.
// Only meaningful once calibrateSeaLevel has run.
func (g *Generator) land(t *Tile) bool {
	return t.Elevation > g.seaLevel
}

// coordsByElevationDesc returns the land coordinates sorted from highest to
// lowest, with a coordinate tie-break so runs are reproducible when many
// cells share an elevation.
func (g *Generator) coordsByElevationDesc() []HexCoord {
	sorted := make([]HexCoord, 0, len(g.coords))
	for _, c := range g.coords {
		if g.land(g.tiles[c]) {
			sorted = append(sorted, c)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := g.tiles[sorted[i]], g.tiles[sorted[j]]
		if a.Elevation != b.Elevation {
			return a.Elevation > b.Elevation
		}
		if sorted[i].Q != sorted[j].Q {
			return sorted[i].Q < sorted[j].Q
		}
		return sorted[i].R < sorted[j].R
	})
	return sorted
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
