// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

WithLogging wraps a handler with start/completion logging keyed by a
per-request id. JSONResponse and Detail write JSON bodies; Detail emits
the {"detail": ...} shape used for errors and delete confirmations.
CORS handles cross-origin and preflight requests for browser clients.
*/
package middleware
