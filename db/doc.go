// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

The schema includes:

  - polls: poll question and like counter
  - comments: comment text, optionally tied to a poll
  - teams: team name, city, championship count
  - players: player roster entries, optionally tied to a team

# Relationships

	polls 1──* comments (poll_id, unenforced)
	teams 1──* players  (team_id, unenforced)

Foreign keys are declared on sqlite but never enforced; deletes do not
cascade and references are never validated.
*/
package db
