// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types
//
// Create requests carry every field the resource requires; update requests
// carry any subset, where a nil pointer means "keep the stored value".

type CreatePollRequest struct {
	Question string `json:"question"`
}

type UpdatePollRequest struct {
	Question *string `json:"question,omitempty"`
}

type CreateCommentRequest struct {
	PollID  int64  `json:"poll_id"`
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}

type CreateTeamRequest struct {
	TeamName      string `json:"team_name"`
	City          string `json:"city"`
	Championships int64  `json:"championships"`
}

type UpdateTeamRequest struct {
	TeamName      *string `json:"team_name,omitempty"`
	City          *string `json:"city,omitempty"`
	Championships *int64  `json:"championships,omitempty"`
}

type CreatePlayerRequest struct {
	Name         string `json:"name"`
	JerseyNumber int64  `json:"jersey_number"`
	Position     string `json:"position"`
	TeamID       int64  `json:"team_id"`
}

type UpdatePlayerRequest struct {
	Name         *string `json:"name,omitempty"`
	JerseyNumber *int64  `json:"jersey_number,omitempty"`
	Position     *string `json:"position,omitempty"`
	TeamID       *int64  `json:"team_id,omitempty"`
}

// Domain types

type Poll struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Likes    int64  `json:"likes"`
}

type Comment struct {
	ID      int64   `json:"id"`
	PollID  *int64  `json:"poll_id"`
	Content *string `json:"content"`
}

type Team struct {
	ID            int64  `json:"id"`
	TeamName      string `json:"team_name"`
	City          string `json:"city"`
	Championships int64  `json:"championships"`
}

type Player struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	JerseyNumber int64  `json:"jersey_number"`
	Position     string `json:"position"`
	TeamID       *int64 `json:"team_id"`
}

// DetailResponse is the body shape for delete confirmations and errors,
// e.g. {"detail": "Poll deleted successfully"}.
type DetailResponse struct {
	Detail string `json:"detail"`
}
