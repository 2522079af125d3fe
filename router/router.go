// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/fanboard/api/handlers"
	"github.com/fanboard/api/middleware"
	"github.com/fanboard/api/models"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()
	started := time.Now()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{
			"status": "ok",
			"uptime": humanize.RelTime(started, time.Now(), "", ""),
		})
	})

	// One controller per resource family. Collection routes end in {$}
	// so they match the trailing-slash paths exactly.
	schemas := []models.Schema{
		models.PollSchema,
		models.CommentSchema,
		models.TeamSchema,
		models.PlayerSchema,
	}
	for _, schema := range schemas {
		res := handlers.NewResource(db, schema)
		base := "/" + schema.Table

		mux.HandleFunc("POST "+base+"/{$}", middleware.WithLogging(res.Create))
		mux.HandleFunc("GET "+base+"/{$}", middleware.WithLogging(res.List))
		mux.HandleFunc("GET "+base+"/{id}", middleware.WithLogging(res.Get))
		mux.HandleFunc("PUT "+base+"/{id}", middleware.WithLogging(res.Update))
		mux.HandleFunc("DELETE "+base+"/{id}", middleware.WithLogging(res.Delete))
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fanboard API v1"))
	})

	return mux
}
