package db

import (
	"context"
	"errors"
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/op"
	"github.com/nickyhof/SQLExplorer/ps"
	"github.com/nickyhof/SQLExplorer/store"
)

var errExec = errors.New("constraint violated")

type execCall struct {
	SQL  string
	Args []any
}

// fakeConn answers the introspection queries for table t(id, name) and
// records every statement executed inside a transaction.
type fakeConn struct {
	calls      int
	begins     int
	commits    int
	rollbacks  int
	execs      []execCall
	failExecAt int // index into execs that fails, -1 for none
	failBegin  bool
	failQuery  bool
	affected   int64
	data       [][]any
}

func newFakeConn(data ...[]any) *fakeConn {
	return &fakeConn{failExecAt: -1, affected: 1, data: data}
}

func (conn *fakeConn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	conn.calls++
	return conn.affected, nil
}

func (conn *fakeConn) Query(ctx context.Context, query string, args ...any) (*store.Rows, error) {
	conn.calls++
	if conn.failQuery {
		return nil, store.ErrConnectionClosed
	}

	switch {
	case strings.Contains(query, "information_schema.columns"):
		return &store.Rows{Data: [][]any{
			{"id", "INTEGER", int32(1), "NO", nil},
			{"name", "VARCHAR", int32(2), "YES", nil},
		}}, nil
	case strings.Contains(query, "duckdb_constraints"):
		return &store.Rows{Data: [][]any{{"PRIMARY KEY", "id"}}}, nil
	case strings.Contains(query, "duckdb_indexes"):
		return &store.Rows{}, nil
	default:
		return &store.Rows{Columns: []string{"id", "name"}, Data: conn.data}, nil
	}
}

func (conn *fakeConn) Begin(ctx context.Context) (store.Tx, error) {
	conn.calls++
	conn.begins++
	if conn.failBegin {
		return nil, store.ErrConnectionClosed
	}
	return &fakeTx{conn: conn}, nil
}

func (conn *fakeConn) Close() error {
	return nil
}

type fakeTx struct {
	conn *fakeConn
}

func (tx *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tx.conn.calls++
	tx.conn.execs = append(tx.conn.execs, execCall{SQL: query, Args: args})
	if len(tx.conn.execs)-1 == tx.conn.failExecAt {
		return 0, errExec
	}
	return tx.conn.affected, nil
}

func (tx *fakeTx) Commit() error {
	tx.conn.calls++
	tx.conn.commits++
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.conn.calls++
	tx.conn.rollbacks++
	return nil
}

type fakeJournal struct {
	batches []ps.Batch
	err     error
}

func (journal *fakeJournal) RecordBatch(batch ps.Batch, identity core.Identity) (ps.Transaction, error) {
	if journal.err != nil {
		return ps.Transaction{}, journal.err
	}
	journal.batches = append(journal.batches, batch)
	return ps.Transaction{Id: "abc123", Author: identity.Name}, nil
}

var testTable = core.Table{
	Name: "t",
	Columns: []core.Column{
		{Name: "id", Type: "INTEGER", Position: 1, PrimaryKey: true},
		{Name: "name", Type: "VARCHAR", Position: 2, Nullable: true},
	},
}

// newTestSession builds a session over rows without touching conn.
func newTestSession(conn store.Conn, rows ...core.Row) *Session {
	snapshot := NewSnapshot()
	snapshot.Load(rows)
	return &Session{
		ID:       "session-1",
		conn:     conn,
		table:    &op.TableOp{Table: testTable, Conn: conn},
		snapshot: snapshot,
		ledger:   NewLedger(snapshot),
	}
}
