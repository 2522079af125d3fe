// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags override environment. Everything has a default except the database
URL when running against postgres: sqlite falls back to a local
fanboard.db file.
*/
package cliparse
