// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fanboard/api/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	testutil.AssertJSON(t, w, &resp)
	if resp["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %q", resp["status"])
	}
}

func TestRootEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "fanboard API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn)

	// Every resource family exposes the same five routes. Collection GETs
	// return 200 on an empty table; item routes 404 on a missing id, which
	// proves the handler (not the mux) produced the response.
	for _, family := range []string{"polls", "comments", "teams", "players"} {
		t.Run(family, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/"+family+"/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("GET /%s/ expected 200, got %d", family, w.Code)
			}

			for _, method := range []string{"GET", "PUT", "DELETE"} {
				req := testutil.MakeRequest(method, "/"+family+"/12345", map[string]any{})
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				if w.Code != http.StatusNotFound {
					t.Errorf("%s /%s/12345 expected 404, got %d", method, family, w.Code)
				}
			}
		})
	}
}
