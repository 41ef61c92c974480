// Copyright © 2026 Stratus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: storage/sqlite.go
// Summary: Sqlite-backed persistence for the saved city list and its
//          display order.
// Notes: Uses the pure Go driver (modernc.org/sqlite), no cgo.

package storage

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// City is one persisted dashboard entry. Position reflects the display
// order on the board, zero-based.
type City struct {
	ID       string
	Name     string
	Country  string
	Position int
}

// Store persists the city list in a sqlite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// WAL keeps the frequent small order writes cheap.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Printf("Storage: could not set WAL mode: %v", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS cities (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        country TEXT NOT NULL DEFAULT '',
        position INTEGER NOT NULL DEFAULT 0
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns every saved city ordered by position.
func (s *Store) Load() ([]City, error) {
	rows, err := s.db.Query(`SELECT id, name, country, position FROM cities ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]City, 0)
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Position); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Upsert inserts or replaces a city row, keeping an existing position
// when the city is already saved.
func (s *Store) Upsert(c City) error {
	_, err := s.db.Exec(`INSERT INTO cities(id, name, country, position) VALUES(?,?,?,?)
        ON CONFLICT(id) DO UPDATE SET name=excluded.name, country=excluded.country`,
		c.ID, c.Name, c.Country, c.Position)
	return err
}

// Delete removes a city row. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM cities WHERE id = ?`, id)
	return err
}

// SaveOrder rewrites every city's position to match the given id order.
// Ids without a row are skipped; rows not mentioned keep their position.
func (s *Store) SaveOrder(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`UPDATE cities SET position = ? WHERE id = ?`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for pos, id := range ids {
		if _, err := stmt.Exec(pos, id); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
