package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/op"
	"github.com/nickyhof/SQLExplorer/sql"
	"github.com/nickyhof/SQLExplorer/store"
)

// Engine owns the store connection and the active table session.
type Engine struct {
	conn        store.Conn
	coordinator *Coordinator
	session     *Session
	journal     Journal
	identity    core.Identity
	s3          *S3Config
	logger      *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

// WithJournal records every successful commit in journal.
func WithJournal(journal Journal) Option {
	return func(engine *Engine) {
		engine.journal = journal
	}
}

func WithIdentity(identity core.Identity) Option {
	return func(engine *Engine) {
		engine.identity = identity
	}
}

func WithS3Config(cfg *S3Config) Option {
	return func(engine *Engine) {
		engine.s3 = cfg
	}
}

func NewEngine(conn store.Conn, opts ...Option) *Engine {
	engine := &Engine{conn: conn, logger: slog.Default()}
	for _, opt := range opts {
		opt(engine)
	}
	engine.coordinator = NewCoordinator(conn, engine.journal, engine.identity, engine.logger)
	return engine
}

func (engine *Engine) Conn() store.Conn {
	return engine.conn
}

func (engine *Engine) Coordinator() *Coordinator {
	return engine.coordinator
}

func (engine *Engine) hasPendingChanges() bool {
	return engine.session != nil && !engine.session.ledger.IsEmpty()
}

// OpenTable loads a table and makes it the active session. It refuses while
// the current session has pending edits.
func (engine *Engine) OpenTable(ctx context.Context, name string) (*Session, error) {
	if engine.hasPendingChanges() {
		return nil, fmt.Errorf("%w: %d pending on %s", ErrPendingChanges, engine.session.ledger.Size(), engine.session.Table().Name)
	}

	session, err := openSession(ctx, engine.conn, name)
	if err != nil {
		return nil, err
	}

	engine.session = session
	engine.logger.Debug("table opened", "table", name, "rows", session.snapshot.Len(), "session", session.ID)
	return session, nil
}

func (engine *Engine) Session() (*Session, error) {
	if engine.session == nil {
		return nil, ErrNoActiveTable
	}
	return engine.session, nil
}

func (engine *Engine) CloseTable() error {
	if engine.hasPendingChanges() {
		return ErrPendingChanges
	}
	engine.session = nil
	return nil
}

func (engine *Engine) Commit(ctx context.Context) (CommitResult, error) {
	session, err := engine.Session()
	if err != nil {
		return CommitResult{}, err
	}
	return engine.coordinator.Commit(ctx, session)
}

func (engine *Engine) Rollback(ctx context.Context, confirm func(pending int) bool) (int, error) {
	session, err := engine.Session()
	if err != nil {
		return 0, err
	}
	return engine.coordinator.Rollback(ctx, session, confirm)
}

// Execute runs one ad-hoc statement. Statements that return rows yield a
// QueryResult; anything else runs in autocommit mode and yields a
// CommitResult.
func (engine *Engine) Execute(ctx context.Context, query string) (Result, error) {
	start := time.Now()

	switch sql.Classify(query) {
	case sql.EmptyStatement:
		return nil, ErrEmptyStatement

	case sql.QueryStatement:
		rows, err := engine.conn.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		result := newQueryResult(rows)
		result.ExecutionTimeSec = time.Since(start).Seconds()
		return result, nil

	default:
		affected, err := engine.conn.Exec(ctx, query)
		if err != nil {
			return nil, err
		}
		engine.refresh(ctx)
		return CommitResult{
			RowsAffected:     affected,
			ExecutionTimeSec: time.Since(start).Seconds(),
		}, nil
	}
}

// ExecuteScript runs every statement of a script read from a local path,
// file://, http(s):// or s3:// location, stopping at the first error.
func (engine *Engine) ExecuteScript(ctx context.Context, path string) (int, error) {
	r, err := openRemoteReader(ctx, path, engine.s3)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	script, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	executed := 0
	for _, statement := range sql.SplitStatements(string(script)) {
		if _, err := engine.Execute(ctx, statement); err != nil {
			return executed, fmt.Errorf("statement %d: %w", executed+1, err)
		}
		executed++
	}
	return executed, nil
}

// Reload reads the active table again. It refuses while edits are pending.
func (engine *Engine) Reload(ctx context.Context) error {
	session, err := engine.Session()
	if err != nil {
		return err
	}
	if engine.hasPendingChanges() {
		return ErrPendingChanges
	}
	return session.Reload(ctx)
}

// refresh reloads the active table after an ad-hoc write, unless the user
// has edits pending against the current baseline.
func (engine *Engine) refresh(ctx context.Context) {
	if engine.session == nil || engine.hasPendingChanges() {
		return
	}
	if err := engine.session.reload(ctx); err != nil {
		engine.logger.Warn("failed to reload table", "table", engine.session.Table().Name, "err", err)
	}
}

func (engine *Engine) Tables(ctx context.Context) ([]string, error) {
	return op.GetDatabase(engine.conn).TableNames(ctx)
}

// Search finds rows of the active table whose text columns contain text.
func (engine *Engine) Search(ctx context.Context, text string) (QueryResult, error) {
	session, err := engine.Session()
	if err != nil {
		return QueryResult{}, err
	}

	start := time.Now()
	rows, err := session.table.Search(ctx, strings.TrimSpace(text))
	if err != nil {
		return QueryResult{}, err
	}

	result := newQueryResult(rows)
	result.ExecutionTimeSec = time.Since(start).Seconds()
	return result, nil
}

// Export writes the active table's baseline as CSV.
func (engine *Engine) Export(ctx context.Context, path string) error {
	session, err := engine.Session()
	if err != nil {
		return err
	}
	return session.ExportCSV(ctx, path, engine.s3)
}

// ExportQuery runs a query and writes its result as CSV.
func (engine *Engine) ExportQuery(ctx context.Context, query, path string) error {
	if sql.Classify(query) != sql.QueryStatement {
		return fmt.Errorf("only queries can be exported")
	}

	rows, err := engine.conn.Query(ctx, query)
	if err != nil {
		return err
	}
	return ExportCSV(ctx, newQueryResult(rows), path, engine.s3)
}

// Close closes the connection. It refuses while edits are pending.
func (engine *Engine) Close() error {
	if engine.hasPendingChanges() {
		return ErrPendingChanges
	}
	engine.session = nil
	return engine.conn.Close()
}

// CloseDiscarding drops any pending edits and closes the connection.
func (engine *Engine) CloseDiscarding() error {
	if engine.hasPendingChanges() {
		engine.logger.Warn("discarding pending changes", "table", engine.session.Table().Name, "changes", engine.session.ledger.Size())
		engine.session.ledger.Clear()
	}
	engine.session = nil
	return engine.conn.Close()
}
