// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the resource controllers into an http.ServeMux
using Go 1.22+ method routing.

Routes are registered from the schema descriptors, so adding a resource
means adding a descriptor, not new routes. All resource handlers are
wrapped with request logging.
*/
package router
