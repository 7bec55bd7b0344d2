package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/ps"
	"github.com/nickyhof/SQLExplorer/sql"
	"github.com/nickyhof/SQLExplorer/store"
)

type CoordinatorState int

const (
	Idle CoordinatorState = iota
	Committing
	Committed
	Failed
	RollingBack
)

func (state CoordinatorState) String() string {
	switch state {
	case Idle:
		return "idle"
	case Committing:
		return "committing"
	case Committed:
		return "committed"
	case Failed:
		return "failed"
	case RollingBack:
		return "rolling back"
	default:
		return "unknown"
	}
}

// Journal records successfully committed batches.
type Journal interface {
	RecordBatch(batch ps.Batch, identity core.Identity) (ps.Transaction, error)
}

// Coordinator applies a session's ledger in one store transaction, or
// discards it.
type Coordinator struct {
	conn     store.Conn
	journal  Journal
	identity core.Identity
	logger   *slog.Logger
	state    CoordinatorState
}

func NewCoordinator(conn store.Conn, journal Journal, identity core.Identity, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		conn:     conn,
		journal:  journal,
		identity: identity,
		logger:   logger,
	}
}

func (c *Coordinator) State() CoordinatorState {
	return c.state
}

// Commit applies every pending edit in ledger order inside one transaction.
// Any failure rolls the whole transaction back and leaves the ledger as it
// was, so the same commit can be retried. Once started, a commit runs to
// completion or failure.
func (c *Coordinator) Commit(ctx context.Context, session *Session) (CommitResult, error) {
	if session.ledger.IsEmpty() {
		return CommitResult{}, nil
	}

	c.state = Committing
	start := time.Now()
	table := session.Table()
	entries := session.ledger.Entries()

	tx, err := c.conn.Begin(ctx)
	if err != nil {
		c.state = Failed
		return CommitResult{}, &CommitFailedError{Index: -1, Cause: err}
	}

	result := CommitResult{Statements: make([]sql.Statement, 0, len(entries))}
	batch := ps.Batch{Session: session.ID, Table: table.Name}

	for i, change := range entries {
		statement, err := sql.Synthesize(change, table)
		var affected int64
		if err == nil {
			affected, err = tx.Exec(ctx, statement.SQL, statement.Args...)
		}
		if err != nil {
			c.abort(tx, table.Name)
			c.state = Failed
			c.logger.Error("commit failed", "table", table.Name, "index", i, "kind", change.Kind.String(), "position", change.Position, "err", err)
			return CommitResult{}, &CommitFailedError{Index: i, Change: change, Cause: err}
		}

		if change.Kind != core.InsertChange && affected != 1 {
			c.logger.Warn("value match did not hit exactly one row",
				"table", table.Name, "kind", change.Kind.String(), "position", change.Position, "rows", affected)
		}

		switch change.Kind {
		case core.InsertChange:
			result.Inserted++
		case core.UpdateChange:
			result.Updated++
		case core.DeleteChange:
			result.Deleted++
		}
		result.RowsAffected += affected
		result.Statements = append(result.Statements, statement)
		batch.Statements = append(batch.Statements, ps.StatementRecord{
			Kind:         change.Kind.String(),
			Position:     change.Position,
			SQL:          statement.SQL,
			Args:         statement.Args,
			RowsAffected: affected,
		})
	}

	if err := tx.Commit(); err != nil {
		c.abort(tx, table.Name)
		c.state = Failed
		return CommitResult{}, &CommitFailedError{Index: -1, Cause: err}
	}

	c.state = Committed
	session.ledger.Clear()
	result.ExecutionTimeSec = time.Since(start).Seconds()

	c.logger.Info("changes committed", "table", table.Name, "changes", result.Changes(), "rows", result.RowsAffected)

	batch.Inserted, batch.Updated, batch.Deleted = result.Inserted, result.Updated, result.Deleted
	batch.RowsAffected = result.RowsAffected
	result.Transaction = c.record(batch)

	if err := session.reload(ctx); err != nil {
		return result, fmt.Errorf("changes committed but reload failed, edits are blocked until the table is reloaded: %w", err)
	}
	result.RowCount = session.snapshot.Len()

	return result, nil
}

// Rollback discards all pending edits after confirm approves the number of
// edits about to be lost, then reloads the baseline. A nil confirm approves.
func (c *Coordinator) Rollback(ctx context.Context, session *Session, confirm func(pending int) bool) (int, error) {
	if session.ledger.IsEmpty() {
		return 0, nil
	}

	pending := session.ledger.Size()
	if confirm != nil && !confirm(pending) {
		return 0, ErrRollbackDeclined
	}

	c.state = RollingBack
	defer func() { c.state = Idle }()

	session.ledger.Clear()
	c.logger.Info("changes discarded", "table", session.Table().Name, "changes", pending)

	if err := session.reload(ctx); err != nil {
		return pending, fmt.Errorf("changes discarded but reload failed, edits are blocked until the table is reloaded: %w", err)
	}
	return pending, nil
}

func (c *Coordinator) abort(tx store.Tx, table string) {
	if err := tx.Rollback(); err != nil {
		c.logger.Warn("transaction rollback failed", "table", table, "err", err)
	}
}

// record writes the batch to the journal. Journal failures never undo a
// store commit.
func (c *Coordinator) record(batch ps.Batch) ps.Transaction {
	if c.journal == nil {
		return ps.Transaction{}
	}

	txn, err := c.journal.RecordBatch(batch, c.identity)
	if err != nil {
		c.logger.Warn("failed to journal commit", "table", batch.Table, "err", err)
		return ps.Transaction{}
	}
	return txn
}
