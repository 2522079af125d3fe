// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the record types, request types, and schema
descriptors for the Fanboard API.

# Schema Descriptors

A Schema describes one resource table: its name, ordered columns, which
fields are required at creation, and which may change on update. The
generic controller in the handlers package is instantiated with one
descriptor per resource:

	handlers.NewResource(db, models.PollSchema)

# Resources

	Poll    polls    question (required), likes (defaults to 0, immutable)
	Comment comments poll_id + content (required at creation; poll_id immutable)
	Team    teams    team_name, city, championships (all required)
	Player  players  name, jersey_number, position, team_id (all required)

Pointer fields on update requests distinguish "not supplied" from a value;
there is no way to express an explicit null.
*/
package models
