// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Fanboard API server.

Fanboard is a small sports-fan engagement service: polls with comment
threads, plus a directory of teams and their players. Every resource is
plain CRUD over a relational store.

# Starting the Server

The server runs against a local SQLite file by default:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings (flags override environment):

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
    (default: fanboard.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: one generic resource controller, instantiated per table
  - models: record types, request types, and schema descriptors
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
