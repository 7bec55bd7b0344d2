package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/op"
	"github.com/nickyhof/SQLExplorer/store"
)

// RowState marks how a displayed row differs from the baseline.
type RowState int

const (
	RowClean RowState = iota
	RowInserted
	RowUpdated
	RowDeleted
)

func (state RowState) Marker() string {
	switch state {
	case RowInserted:
		return "+"
	case RowUpdated:
		return "*"
	case RowDeleted:
		return "-"
	default:
		return ""
	}
}

// ViewRow is a row of the baseline with pending edits overlaid.
type ViewRow struct {
	Position int
	Row      core.Row
	State    RowState
}

// Session is one loaded table: its schema, baseline and pending edits.
// A Session is not safe for concurrent use.
type Session struct {
	ID       string
	LoadedAt time.Time

	conn     store.Conn
	table    *op.TableOp
	snapshot *Snapshot
	ledger   *Ledger
	stale    bool
}

func openSession(ctx context.Context, conn store.Conn, tableName string) (*Session, error) {
	snapshot := NewSnapshot()
	session := &Session{
		ID:       uuid.NewString(),
		conn:     conn,
		snapshot: snapshot,
		ledger:   NewLedger(snapshot),
	}

	if err := session.load(ctx, tableName); err != nil {
		return nil, err
	}
	return session, nil
}

// load introspects the table and replaces the baseline. Pending edits refer
// to positions of the old baseline, so they are always dropped.
func (session *Session) load(ctx context.Context, tableName string) error {
	tableOp, err := op.GetTable(ctx, session.conn, tableName)
	if err != nil {
		return err
	}

	rows, err := tableOp.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", tableName, err)
	}

	session.table = tableOp
	session.snapshot.Load(rows)
	session.ledger.Clear()
	session.LoadedAt = time.Now()
	return nil
}

// reload replaces the baseline from the store. After a failed reload the
// baseline may no longer match the table, so the session stays stale and
// refuses updates and deletes until a reload succeeds.
func (session *Session) reload(ctx context.Context) error {
	if err := session.load(ctx, session.table.Table.Name); err != nil {
		session.stale = true
		return err
	}
	session.stale = false
	return nil
}

// Reload discards pending edits and reads the table again.
func (session *Session) Reload(ctx context.Context) error {
	return session.reload(ctx)
}

// Stale reports whether the last reload failed.
func (session *Session) Stale() bool {
	return session.stale
}

func (session *Session) Table() core.Table {
	return session.table.Table
}

func (session *Session) TableOp() *op.TableOp {
	return session.table
}

func (session *Session) Snapshot() *Snapshot {
	return session.snapshot
}

func (session *Session) Ledger() *Ledger {
	return session.ledger
}

func (session *Session) RecordInsert(data core.Row) int {
	return session.ledger.RecordInsert(data)
}

// staleBaseline reports whether an edit at position would rely on a baseline
// row that may no longer match the table. Pending inserts never do.
func (session *Session) staleBaseline(position int) bool {
	if !session.stale {
		return false
	}
	change, ok := session.ledger.Pending(position)
	return !ok || change.Kind != core.InsertChange
}

func (session *Session) RecordUpdate(position int, after core.Row) error {
	if session.staleBaseline(position) {
		return ErrStaleSnapshot
	}
	return session.ledger.RecordUpdate(position, after)
}

func (session *Session) RecordDelete(position int) error {
	if session.staleBaseline(position) {
		return ErrStaleSnapshot
	}
	return session.ledger.RecordDelete(position)
}

// CurrentRow returns the row at position as the user currently sees it.
func (session *Session) CurrentRow(position int) (core.Row, error) {
	if change, ok := session.ledger.Pending(position); ok {
		switch change.Kind {
		case core.InsertChange:
			return change.Data.Clone(), nil
		case core.UpdateChange:
			return change.After.Clone(), nil
		case core.DeleteChange:
			return nil, fmt.Errorf("%w: %d is deleted", ErrPositionNotFound, position)
		}
	}

	rs, err := session.snapshot.Get(position)
	if err != nil {
		return nil, err
	}
	return rs.Row, nil
}

// SetCell edits one cell, recording the full resulting row.
func (session *Session) SetCell(position int, column string, value any) error {
	if _, ok := session.table.Table.Column(column); !ok {
		return fmt.Errorf("unknown column %s", column)
	}

	row, err := session.CurrentRow(position)
	if err != nil {
		return err
	}
	row[column] = value
	return session.RecordUpdate(position, row)
}

// View returns the baseline with pending edits overlaid, followed by pending
// inserts in the order they were made.
func (session *Session) View() []ViewRow {
	var view []ViewRow

	for _, rs := range session.snapshot.Rows() {
		row := ViewRow{Position: rs.Position, Row: rs.Row}
		if change, ok := session.ledger.Pending(rs.Position); ok {
			switch change.Kind {
			case core.UpdateChange:
				row.Row = change.After.Clone()
				row.State = RowUpdated
			case core.DeleteChange:
				row.State = RowDeleted
			}
		}
		view = append(view, row)
	}

	for _, change := range session.ledger.Entries() {
		if change.Kind == core.InsertChange {
			view = append(view, ViewRow{Position: change.Position, Row: change.Data.Clone(), State: RowInserted})
		}
	}

	return view
}

// Baseline returns the loaded rows as a QueryResult in column order.
func (session *Session) Baseline() QueryResult {
	columns := session.table.Table.ColumnNames()
	rows := session.snapshot.Rows()

	data := make([][]string, len(rows))
	for i, rs := range rows {
		data[i] = make([]string, len(columns))
		for j, col := range columns {
			data[i][j] = core.Text(rs.Row[col])
		}
	}

	return QueryResult{Columns: columns, Data: data, RecordsRead: len(data)}
}

// ExportCSV writes the baseline; pending edits are not included.
func (session *Session) ExportCSV(ctx context.Context, path string, cfg *S3Config) error {
	return ExportCSV(ctx, session.Baseline(), path, cfg)
}
