// Package persistence provides SQLite-based storage for generated worlds.
// The generator itself stays a pure transform; saving is the caller's call.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ztnixon97/rust-civ/internal/world"
)

// DB wraps a SQLite connection for world storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		radius INTEGER NOT NULL,
		sea_level REAL NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		world_id TEXT NOT NULL REFERENCES worlds(id),
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		elevation REAL NOT NULL,
		geology INTEGER NOT NULL,
		biome INTEGER NOT NULL,
		has_river INTEGER NOT NULL,
		river_flow REAL NOT NULL,
		river_edges INTEGER NOT NULL,
		is_coastal INTEGER NOT NULL,
		temperature REAL NOT NULL,
		precipitation REAL NOT NULL,
		drainage REAL NOT NULL,
		soil_fertility REAL NOT NULL,
		resource INTEGER NOT NULL,
		defensibility REAL NOT NULL,
		trade_value REAL NOT NULL,
		flood_risk REAL NOT NULL,
		naval_access REAL NOT NULL,
		PRIMARY KEY (world_id, q, r)
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_world ON tiles(world_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveWorld writes a finished world and all its tiles, returning the new
// world's ID.
func (db *DB) SaveWorld(w *world.World) (string, error) {
	id := uuid.NewString()
	slog.Info("saving world", "id", id, "tiles", w.TileCount())

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO worlds (id, seed, radius, sea_level, created_at) VALUES (?, ?, ?, ?, ?)",
		id, w.Seed, w.Radius, w.SeaLevel, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert world: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO tiles
		(world_id, q, r, elevation, geology, biome, has_river, river_flow,
		 river_edges, is_coastal, temperature, precipitation, drainage,
		 soil_fertility, resource, defensibility, trade_value, flood_risk, naval_access)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, t := range w.Tiles {
		_, err := stmt.Exec(
			id, t.Coord.Q, t.Coord.R, t.Elevation, t.Geology, t.Biome,
			boolToInt(t.HasRiver), t.RiverFlow, packEdges(t.RiverEdges),
			boolToInt(t.IsCoastal), t.Temperature, t.Precipitation,
			t.Drainage, t.SoilFertility, t.Resource,
			t.Defensibility, t.TradeValue, t.FloodRisk, t.NavalAccess,
		)
		if err != nil {
			return "", fmt.Errorf("insert tile (%d,%d): %w", t.Coord.Q, t.Coord.R, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("world saved", "id", id)
	return id, nil
}

type worldRow struct {
	ID       string  `db:"id"`
	Seed     int64   `db:"seed"`
	Radius   int     `db:"radius"`
	SeaLevel float64 `db:"sea_level"`
}

type tileRow struct {
	Q             int     `db:"q"`
	R             int     `db:"r"`
	Elevation     float64 `db:"elevation"`
	Geology       uint8   `db:"geology"`
	Biome         uint8   `db:"biome"`
	HasRiver      int     `db:"has_river"`
	RiverFlow     float64 `db:"river_flow"`
	RiverEdges    int     `db:"river_edges"`
	IsCoastal     int     `db:"is_coastal"`
	Temperature   float64 `db:"temperature"`
	Precipitation float64 `db:"precipitation"`
	Drainage      float64 `db:"drainage"`
	SoilFertility float64 `db:"soil_fertility"`
	Resource      uint8   `db:"resource"`
	Defensibility float64 `db:"defensibility"`
	TradeValue    float64 `db:"trade_value"`
	FloodRisk     float64 `db:"flood_risk"`
	NavalAccess   float64 `db:"naval_access"`
}

// LoadWorld reads a saved world back by ID.
func (db *DB) LoadWorld(id string) (*world.World, error) {
	var wr worldRow
	if err := db.conn.Get(&wr, "SELECT id, seed, radius, sea_level FROM worlds WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("load world %s: %w", id, err)
	}

	var rows []tileRow
	err := db.conn.Select(&rows, `SELECT q, r, elevation, geology, biome, has_river,
		river_flow, river_edges, is_coastal, temperature, precipitation, drainage,
		soil_fertility, resource, defensibility, trade_value, flood_risk, naval_access
		FROM tiles WHERE world_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("load tiles for %s: %w", id, err)
	}

	w := &world.World{
		Radius:   wr.Radius,
		Seed:     wr.Seed,
		SeaLevel: wr.SeaLevel,
		Tiles:    make(map[world.HexCoord]*world.Tile, len(rows)),
	}
	for _, row := range rows {
		coord := world.HexCoord{Q: row.Q, R: row.R}
		w.Tiles[coord] = &world.Tile{
			Coord:         coord,
			Elevation:     row.Elevation,
			Geology:       world.Geology(row.Geology),
			Biome:         world.Biome(row.Biome),
			HasRiver:      row.HasRiver != 0,
			RiverFlow:     row.RiverFlow,
			RiverEdges:    unpackEdges(row.RiverEdges),
			IsCoastal:     row.IsCoastal != 0,
			Temperature:   row.Temperature,
			Precipitation: row.Precipitation,
			Drainage:      row.Drainage,
			SoilFertility: row.SoilFertility,
			Resource:      world.Resource(row.Resource),
			Defensibility: row.Defensibility,
			TradeValue:    row.TradeValue,
			FloodRisk:     row.FloodRisk,
			NavalAccess:   row.NavalAccess,
		}
	}
	return w, nil
}

// ListWorlds returns the IDs of all saved worlds, newest first.
func (db *DB) ListWorlds() ([]string, error) {
	var ids []string
	err := db.conn.Select(&ids, "SELECT id FROM worlds ORDER BY created_at DESC")
	return ids, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// packEdges stores the six river-edge flags as a bitmask.
func packEdges(edges [6]bool) int {
	mask := 0
	for i, e := range edges {
		if e {
			mask |= 1 << i
		}
	}
	return mask
}

func unpackEdges(mask int) [6]bool {
	var edges [6]bool
	for i := range edges {
		edges[i] = mask&(1<<i) != 0
	}
	return edges
}
