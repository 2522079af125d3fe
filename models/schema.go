// Copyright (c) 2025 Fanboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Kind describes how a column's JSON values are decoded and scanned.
type Kind int

const (
	Text Kind = iota
	Integer
)

// Column describes one non-id column of a resource table. Name doubles as
// the JSON field name; the API and the store share vocabulary.
type Column struct {
	Name      string
	Kind      Kind
	Required  bool // must be present and non-null at creation
	Updatable bool // may be replaced by an update request
	Default   any  // inserted when not required and absent (nil means NULL)
}

// Schema is the descriptor a resource controller is instantiated with:
// one table, its ordered column list, and which columns are required at
// creation or replaceable on update. The id column is implicit and always
// store-assigned.
type Schema struct {
	Table    string // table name, also the route segment
	Singular string // "Poll", used in not-found and delete messages
	Columns  []Column
}

// ColumnNames returns the non-id column names in table order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// UpdatableColumns returns the columns an update request may replace,
// in table order.
func (s Schema) UpdatableColumns() []Column {
	var cols []Column
	for _, col := range s.Columns {
		if col.Updatable {
			cols = append(cols, col)
		}
	}
	return cols
}

// The four resource descriptors. likes and comments.poll_id are write-once:
// no exposed operation ever updates them.

var PollSchema = Schema{
	Table:    "polls",
	Singular: "Poll",
	Columns: []Column{
		{Name: "question", Kind: Text, Required: true, Updatable: true},
		{Name: "likes", Kind: Integer, Default: int64(0)},
	},
}

var CommentSchema = Schema{
	Table:    "comments",
	Singular: "Comment",
	Columns: []Column{
		{Name: "poll_id", Kind: Integer, Required: true},
		{Name: "content", Kind: Text, Required: true, Updatable: true},
	},
}

var TeamSchema = Schema{
	Table:    "teams",
	Singular: "Team",
	Columns: []Column{
		{Name: "team_name", Kind: Text, Required: true, Updatable: true},
		{Name: "city", Kind: Text, Required: true, Updatable: true},
		{Name: "championships", Kind: Integer, Required: true, Updatable: true},
	},
}

var PlayerSchema = Schema{
	Table:    "players",
	Singular: "Player",
	Columns: []Column{
		{Name: "name", Kind: Text, Required: true, Updatable: true},
		{Name: "jersey_number", Kind: Integer, Required: true, Updatable: true},
		{Name: "position", Kind: Text, Required: true, Updatable: true},
		{Name: "team_id", Kind: Integer, Required: true, Updatable: true},
	},
}
