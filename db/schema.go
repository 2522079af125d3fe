// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "sqlite" or "postgres"; only the identity column syntax differs.
func CreateSchema(db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == "postgres" {
		schema = postgresSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Foreign keys are declared but not enforced: sqlite ships with FK
// enforcement off and we never enable the pragma, so a comment may
// reference a poll that does not exist and deleting a poll leaves its
// comments behind.
const sqliteSchema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    likes INTEGER DEFAULT 0
);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER,
    content TEXT,
    FOREIGN KEY (poll_id) REFERENCES polls (id)
);

-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    team_name TEXT NOT NULL,
    city TEXT NOT NULL,
    championships INTEGER DEFAULT 0
);

-- Players
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    jersey_number INTEGER NOT NULL,
    position TEXT NOT NULL,
    team_id INTEGER,
    FOREIGN KEY (team_id) REFERENCES teams (id)
);
`

// Postgres enforces declared foreign keys, which would make insert
// behavior differ between stores, so the declarations are omitted there.
const postgresSchema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    question TEXT NOT NULL,
    likes INTEGER DEFAULT 0
);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    poll_id INTEGER,
    content TEXT
);

-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    team_name TEXT NOT NULL,
    city TEXT NOT NULL,
    championships INTEGER DEFAULT 0
);

-- Players
CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    name TEXT NOT NULL,
    jersey_number INTEGER NOT NULL,
    position TEXT NOT NULL,
    team_id INTEGER
);
`
