package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS venues (
    id             TEXT PRIMARY KEY,
    position       INTEGER NOT NULL,
    name           TEXT NOT NULL,
    category       TEXT NOT NULL CHECK(category IN ('dining','activity','nightlife','entertainment')),
    description    TEXT,
    address        TEXT,
    zone           TEXT NOT NULL,
    rating         REAL NOT NULL CHECK(rating BETWEEN 0 AND 5),
    price_tier     INTEGER NOT NULL CHECK(price_tier BETWEEN 1 AND 4),
    estimated_time TEXT,
    image_url      TEXT
);

CREATE TABLE IF NOT EXISTS zone_distances (
    from_zone TEXT NOT NULL,
    to_zone   TEXT NOT NULL,
    miles     REAL NOT NULL CHECK(miles >= 0),
    PRIMARY KEY (from_zone, to_zone)
);

CREATE TABLE IF NOT EXISTS templates (
    id          TEXT PRIMARY KEY,
    position    INTEGER NOT NULL,
    name        TEXT NOT NULL,
    description TEXT,
    duration    TEXT
);

CREATE TABLE IF NOT EXISTS template_steps (
    template_id TEXT NOT NULL REFERENCES templates(id),
    step        INTEGER NOT NULL,
    category    TEXT NOT NULL CHECK(category IN ('dining','activity','nightlife','entertainment')),
    PRIMARY KEY (template_id, step)
);

CREATE INDEX IF NOT EXISTS idx_venues_position ON venues(position);
CREATE INDEX IF NOT EXISTS idx_templates_position ON templates(position);
`

// Open opens or creates the SQLite database, initializes the schema and
// seeds the built-in catalog into an empty database.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := seedIfEmpty(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
