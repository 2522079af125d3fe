// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Fanboard API.

# One Controller, Four Tables

There is a single controller type, Resource, instantiated once per schema
descriptor rather than hand-copied per table:

	polls := handlers.NewResource(db, models.PollSchema)

Each instance serves the five CRUD operations for its table:

	POST   /{resource}/     → Create (echoes input, 422 on missing field)
	GET    /{resource}/     → List   (store-defined order)
	GET    /{resource}/{id} → Get    (404 when absent)
	PUT    /{resource}/{id} → Update (partial merge, 404 when absent)
	DELETE /{resource}/{id} → Delete (404 when nothing matched)

# Contract Quirks

These behaviors are part of the published contract and are intentional:

  - Create responds with the input it accepted, not the stored row; the
    generated id never appears in a create response.
  - An update cannot clear a field: JSON null and an absent field are
    indistinguishable and both mean "keep the stored value".
  - Foreign keys (comments.poll_id, players.team_id) are never validated;
    referencing a missing row succeeds, and deletes do not cascade.
  - Updates are read-merge-write without locking; concurrent updates to
    the same row can lose writes.
*/
package handlers
