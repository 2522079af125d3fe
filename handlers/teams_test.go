// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fanboard/api/models"
	"github.com/fanboard/api/testutil"
)

func TestCreateTeam(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResource(conn, models.TeamSchema)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid team",
			requestBody:    models.CreateTeamRequest{TeamName: "Hawks", City: "Atlanta", Championships: 1},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero championships is a value, not an absence",
			requestBody:    models.CreateTeamRequest{TeamName: "Clippers", City: "Los Angeles", Championships: 0},
			expectedStatus: http.StatusOK,
		},
		{
			// championships has no creation default; it is required
			name:           "missing championships",
			requestBody:    map[string]any{"team_name": "Nets", "city": "Brooklyn"},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing city",
			requestBody:    map[string]any{"team_name": "Nets", "championships": 0},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/teams/", tt.requestBody)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestCreateTeamEcho(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResource(conn, models.TeamSchema)

	req := testutil.MakeRequest("POST", "/teams/", models.CreateTeamRequest{
		TeamName: "Lakers", City: "Los Angeles", Championships: 17,
	})
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CreateTeamRequest
	testutil.AssertJSON(t, w, &resp)
	if resp.TeamName != "Lakers" || resp.City != "Los Angeles" || resp.Championships != 17 {
		t.Errorf("Expected input echoed back, got %+v", resp)
	}
}

func TestUpdateTeamPartial(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResource(conn, models.TeamSchema)
	id := testutil.InsertTeam(t, conn, "Sonics", "Seattle", 1)
	idStr := strconv.FormatInt(id, 10)

	// Only championships changes; name and city keep their stored values
	req := testutil.MakeRequest("PUT", "/teams/"+idStr, map[string]any{"championships": 2})
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.Update(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var team models.Team
	testutil.AssertJSON(t, w, &team)
	if team.ID != id || team.TeamName != "Sonics" || team.City != "Seattle" || team.Championships != 2 {
		t.Errorf("Unexpected merged team: %+v", team)
	}

	// The stored row matches the response
	var stored models.Team
	err := conn.QueryRow("SELECT id, team_name, city, championships FROM teams WHERE id = $1", id).
		Scan(&stored.ID, &stored.TeamName, &stored.City, &stored.Championships)
	if err != nil {
		t.Fatalf("Failed to query team: %v", err)
	}
	if stored != team {
		t.Errorf("Stored team %+v differs from response %+v", stored, team)
	}
}

func TestDeleteTeam(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResource(conn, models.TeamSchema)
	id := testutil.InsertTeam(t, conn, "Expos", "Montreal", 0)
	idStr := strconv.FormatInt(id, 10)

	req := testutil.MakeRequest("DELETE", "/teams/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DetailResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Detail != "Team deleted successfully" {
		t.Errorf("Expected confirmation message, got %q", resp.Detail)
	}

	req = testutil.MakeRequest("DELETE", "/teams/999", nil)
	req.SetPathValue("id", "999")
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
