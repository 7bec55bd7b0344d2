package db

import (
	"fmt"

	"github.com/nickyhof/SQLExplorer/core"
)

// RowSnapshot is a row as it was when the table was last loaded.
type RowSnapshot struct {
	Position int
	Row      core.Row
}

// Snapshot holds the baseline of a loaded table. Positions are only
// meaningful until the next Load.
type Snapshot struct {
	rows []RowSnapshot
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Load replaces the baseline, numbering rows 0..n-1 in load order.
func (snapshot *Snapshot) Load(rows []core.Row) []RowSnapshot {
	snapshot.rows = make([]RowSnapshot, len(rows))
	for i, row := range rows {
		snapshot.rows[i] = RowSnapshot{Position: i, Row: row.Clone()}
	}
	return snapshot.Rows()
}

func (snapshot *Snapshot) Get(position int) (RowSnapshot, error) {
	if position < 0 || position >= len(snapshot.rows) {
		return RowSnapshot{}, fmt.Errorf("%w: %d", ErrPositionNotFound, position)
	}

	rs := snapshot.rows[position]
	return RowSnapshot{Position: rs.Position, Row: rs.Row.Clone()}, nil
}

func (snapshot *Snapshot) Len() int {
	return len(snapshot.rows)
}

// Rows returns a copy of the baseline ordered by position.
func (snapshot *Snapshot) Rows() []RowSnapshot {
	rows := make([]RowSnapshot, len(snapshot.rows))
	for i, rs := range snapshot.rows {
		rows[i] = RowSnapshot{Position: rs.Position, Row: rs.Row.Clone()}
	}
	return rows
}
