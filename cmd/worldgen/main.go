// Command worldgen generates a hex planet and prints its summary, with
// optional SQLite persistence of the finished world.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/ztnixon97/rust-civ/internal/persistence"
	"github.com/ztnixon97/rust-civ/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		preset = flag.String("preset", "default", "world preset (default, pangaea, archipelago, fragmented, dual-supercontinents, mediterranean)")
		radius = flag.Int("radius", 100, "map radius in hexes")
		seed   = flag.Int64("seed", 0, "generation seed (0 = random)")
		dbPath = flag.String("db", "", "SQLite path to save the world (empty = don't save)")
	)
	flag.Parse()

	makeConfig, ok := world.Presets[*preset]
	if !ok {
		slog.Error("unknown preset", "preset", *preset)
		os.Exit(1)
	}
	cfg := makeConfig()
	cfg.Seed = *seed

	gen, err := world.NewGenerator(*radius, cfg)
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	w, err := gen.Generate()
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	sum := w.Summarize()
	fmt.Printf("\nWorld %q: %s tiles (radius %d, seed %d)\n",
		*preset, humanize.Comma(int64(sum.TotalTiles)), w.Radius, w.Seed)
	fmt.Printf("Land: %s tiles (%.1f%%), coastline: %s, rivers: %s, lakes: %d\n",
		humanize.Comma(int64(sum.LandTiles)), sum.LandFraction*100,
		humanize.Comma(int64(sum.CoastalTiles)), humanize.Comma(int64(sum.RiverTiles)),
		sum.LakeTiles)

	biomes := make([]world.Biome, 0, len(sum.BiomeCounts))
	for b := range sum.BiomeCounts {
		biomes = append(biomes, b)
	}
	sort.Slice(biomes, func(i, j int) bool {
		return sum.BiomeCounts[biomes[i]] > sum.BiomeCounts[biomes[j]]
	})
	for _, b := range biomes {
		fmt.Printf("  %-28s %s\n", world.BiomeName(b), humanize.Comma(int64(sum.BiomeCounts[b])))
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveWorld(w)
		if err != nil {
			slog.Error("failed to save world", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Saved as world %s in %s\n", id, *dbPath)
	}
}
