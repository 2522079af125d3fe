// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/fanboard/api/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own store; nothing leaks between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// An in-memory sqlite database lives on a single connection
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// InsertPoll seeds a poll and returns its assigned id
func InsertPoll(t *testing.T, conn *sql.DB, question string, likes int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO polls (question, likes) VALUES ($1, $2) RETURNING id
	`, question, likes).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return id
}

// InsertComment seeds a comment and returns its assigned id. pollID is
// not checked against the polls table, mirroring the API itself.
func InsertComment(t *testing.T, conn *sql.DB, pollID int64, content string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO comments (poll_id, content) VALUES ($1, $2) RETURNING id
	`, pollID, content).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return id
}

// InsertTeam seeds a team and returns its assigned id
func InsertTeam(t *testing.T, conn *sql.DB, teamName, city string, championships int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO teams (team_name, city, championships) VALUES ($1, $2, $3) RETURNING id
	`, teamName, city, championships).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}

	return id
}

// InsertPlayer seeds a player and returns its assigned id
func InsertPlayer(t *testing.T, conn *sql.DB, name string, jerseyNumber int64, position string, teamID int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO players (name, jersey_number, position, team_id) VALUES ($1, $2, $3, $4) RETURNING id
	`, name, jerseyNumber, position, teamID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
