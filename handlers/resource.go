// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/fanboard/api/middleware"
	"github.com/fanboard/api/models"
)

// Resource is a CRUD controller over one table, driven entirely by its
// schema descriptor. All five handlers issue a single parameterized
// statement; the update handler issues a read followed by a full-row
// write with no transaction around the pair.
type Resource struct {
	db     *sql.DB
	schema models.Schema

	selectAll string
	selectOne string
	insert    string
	update    string
	delete    string
}

// NewResource builds the controller and its statements. Column and table
// names come from the descriptor, never from the request; request values
// only ever travel as bound arguments.
func NewResource(db *sql.DB, schema models.Schema) *Resource {
	cols := schema.ColumnNames()
	colList := strings.Join(cols, ", ")

	res := &Resource{db: db, schema: schema}
	res.selectAll = fmt.Sprintf("SELECT id, %s FROM %s", colList, schema.Table)
	res.selectOne = fmt.Sprintf("%s WHERE id = $1", res.selectAll)
	res.insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.Table, colList, placeholders(1, len(cols)))

	updatable := schema.UpdatableColumns()
	sets := make([]string, len(updatable))
	for i, col := range updatable {
		sets[i] = fmt.Sprintf("%s = $%d", col.Name, i+1)
	}
	res.update = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		schema.Table, strings.Join(sets, ", "), len(updatable)+1)

	res.delete = fmt.Sprintf("DELETE FROM %s WHERE id = $1", schema.Table)

	return res
}

// Create handles POST /{resource}/
//
// Only the required fields are read from the request; everything else is
// defaulted. The response echoes the accepted input, not the stored row,
// so the new id is only discoverable through List or Get.
func (h *Resource) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	echo := make(map[string]any)
	args := make([]any, 0, len(h.schema.Columns))
	for _, col := range h.schema.Columns {
		if !col.Required {
			args = append(args, col.Default)
			continue
		}

		raw, present := body[col.Name]
		if !present || raw == nil {
			middleware.Detail(w, http.StatusUnprocessableEntity, col.Name+" is required")
			return
		}
		val, err := coerceValue(col, raw)
		if err != nil {
			middleware.Detail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		args = append(args, val)
		echo[col.Name] = val
	}

	if _, err := h.db.Exec(h.insert, args...); err != nil {
		slog.Error("failed to insert "+h.name(), "error", err)
		middleware.Detail(w, http.StatusInternalServerError, "Failed to create "+h.name())
		return
	}

	slog.Info(h.name()+" created", "table", h.schema.Table)

	middleware.JSONResponse(w, http.StatusOK, echo)
}

// List handles GET /{resource}/
//
// No ORDER BY: row order is whatever the store returns.
func (h *Resource) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(h.selectAll)
	if err != nil {
		slog.Error("failed to query "+h.schema.Table, "error", err)
		middleware.Detail(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	records := []map[string]any{}
	for rows.Next() {
		record, err := h.scanRecord(rows)
		if err != nil {
			slog.Error("failed to scan "+h.name(), "error", err)
			middleware.Detail(w, http.StatusInternalServerError, "Database error")
			return
		}
		records = append(records, record)
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// Get handles GET /{resource}/{id}
func (h *Resource) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	record, err := h.fetchRecord(id)
	if err == sql.ErrNoRows {
		middleware.Detail(w, http.StatusNotFound, h.schema.Singular+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query "+h.name(), "error", err)
		middleware.Detail(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, record)
}

// Update handles PUT /{resource}/{id}
//
// Fields supplied with a non-null value replace the stored ones; absent
// and null fields keep them, so a field can never be cleared to null.
// Every updatable column is written back even when unchanged. The
// read-merge-write pair runs without a transaction, so concurrent
// updates to the same row can lose writes.
func (h *Resource) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	body, ok := h.parseBody(w, r)
	if !ok {
		return
	}

	record, err := h.fetchRecord(id)
	if err == sql.ErrNoRows {
		middleware.Detail(w, http.StatusNotFound, h.schema.Singular+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query "+h.name(), "error", err)
		middleware.Detail(w, http.StatusInternalServerError, "Database error")
		return
	}

	updatable := h.schema.UpdatableColumns()
	args := make([]any, 0, len(updatable)+1)
	for _, col := range updatable {
		if raw, present := body[col.Name]; present && raw != nil {
			val, err := coerceValue(col, raw)
			if err != nil {
				middleware.Detail(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			record[col.Name] = val
		}
		args = append(args, record[col.Name])
	}
	args = append(args, id)

	if _, err := h.db.Exec(h.update, args...); err != nil {
		slog.Error("failed to update "+h.name(), "error", err, "id", id)
		middleware.Detail(w, http.StatusInternalServerError, "Failed to update "+h.name())
		return
	}

	slog.Info(h.name()+" updated", "id", id)

	middleware.JSONResponse(w, http.StatusOK, record)
}

// Delete handles DELETE /{resource}/{id}
func (h *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	result, err := h.db.Exec(h.delete, id)
	if err != nil {
		slog.Error("failed to delete "+h.name(), "error", err, "id", id)
		middleware.Detail(w, http.StatusInternalServerError, "Failed to delete "+h.name())
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.Detail(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.Detail(w, http.StatusNotFound, h.schema.Singular+" not found")
		return
	}

	slog.Info(h.name()+" deleted", "id", id)

	middleware.Detail(w, http.StatusOK, h.schema.Singular+" deleted successfully")
}

// name returns the lowercase singular, for logs and generic messages.
func (h *Resource) name() string {
	return strings.ToLower(h.schema.Singular)
}

func (h *Resource) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.Detail(w, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *Resource) parseBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body map[string]any
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.Detail(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return body, true
}

// fetchRecord reads one row by id into a record map. Returns
// sql.ErrNoRows untouched so callers can map it to 404.
func (h *Resource) fetchRecord(id int64) (map[string]any, error) {
	row := h.db.QueryRow(h.selectOne, id)
	return h.scanRecord(row)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans id plus the descriptor's columns into a map keyed by
// column name. Nullable columns come back as nil rather than zero values.
func (h *Resource) scanRecord(s scanner) (map[string]any, error) {
	var id int64
	ints := make([]sql.NullInt64, len(h.schema.Columns))
	texts := make([]sql.NullString, len(h.schema.Columns))

	dest := make([]any, 0, len(h.schema.Columns)+1)
	dest = append(dest, &id)
	for i, col := range h.schema.Columns {
		if col.Kind == models.Integer {
			dest = append(dest, &ints[i])
		} else {
			dest = append(dest, &texts[i])
		}
	}

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	record := map[string]any{"id": id}
	for i, col := range h.schema.Columns {
		switch {
		case col.Kind == models.Integer && ints[i].Valid:
			record[col.Name] = ints[i].Int64
		case col.Kind == models.Text && texts[i].Valid:
			record[col.Name] = texts[i].String
		default:
			record[col.Name] = nil
		}
	}
	return record, nil
}

// coerceValue converts a decoded JSON value to the column's storage type.
// encoding/json hands numbers over as float64; integer columns reject
// fractional values instead of truncating them.
func coerceValue(col models.Column, raw any) (any, error) {
	switch col.Kind {
	case models.Integer:
		f, ok := raw.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, fmt.Errorf("%s must be an integer", col.Name)
		}
		return int64(f), nil
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", col.Name)
		}
		return s, nil
	}
}

// placeholders returns "$start, $start+1, ..." for n arguments.
func placeholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = "$" + strconv.Itoa(start+i)
	}
	return strings.Join(parts, ", ")
}
