package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
	"github.com/nickyhof/SQLExplorer/core"
)

const DefaultDriver = "duckdb"

var ErrConnectionClosed = errors.New("connection is closed")

// Conn is a connection to a relational store.
type Conn interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (*Rows, error)
	Begin(ctx context.Context) (Tx, error)
	Close() error
}

// Tx is an open transaction. Exactly one of Commit or Rollback ends it.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit() error
	Rollback() error
}

// Rows is a materialized query result.
type Rows struct {
	Columns []string
	Types   []string
	Data    [][]any
}

func (rows *Rows) Len() int {
	return len(rows.Data)
}

// Row returns the i-th row keyed by column name.
func (rows *Rows) Row(i int) core.Row {
	row := make(core.Row, len(rows.Columns))
	for j, col := range rows.Columns {
		row[col] = rows.Data[i][j]
	}
	return row
}

func (rows *Rows) Maps() []core.Row {
	maps := make([]core.Row, len(rows.Data))
	for i := range rows.Data {
		maps[i] = rows.Row(i)
	}
	return maps
}

// DB is a Conn backed by a database/sql pool.
type DB struct {
	db     *sql.DB
	driver string
	closed atomic.Bool
}

// Open opens a pool for the named driver. An empty driver means DuckDB and
// an empty DuckDB dsn means a private in-memory database.
func Open(driverName, dsn string) (*DB, error) {
	if driverName == "" {
		driverName = DefaultDriver
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driverName, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s store: %w", driverName, err)
	}

	return &DB{db: db, driver: driverName}, nil
}

func (conn *DB) Driver() string {
	return conn.driver
}

func (conn *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if conn.closed.Load() {
		return 0, ErrConnectionClosed
	}

	result, err := conn.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, connError(err)
	}
	return rowsAffected(result), nil
}

func (conn *DB) Query(ctx context.Context, query string, args ...any) (*Rows, error) {
	if conn.closed.Load() {
		return nil, ErrConnectionClosed
	}

	rows, err := conn.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, connError(err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (conn *DB) Begin(ctx context.Context) (Tx, error) {
	if conn.closed.Load() {
		return nil, ErrConnectionClosed
	}

	tx, err := conn.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, connError(err)
	}
	return &sqlTx{tx: tx}, nil
}

func (conn *DB) Close() error {
	if conn.closed.Swap(true) {
		return nil
	}
	return conn.db.Close()
}

type sqlTx struct {
	tx *sql.Tx
}

func (tx *sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := tx.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, connError(err)
	}
	return rowsAffected(result), nil
}

func (tx *sqlTx) Commit() error {
	return connError(tx.tx.Commit())
}

func (tx *sqlTx) Rollback() error {
	err := tx.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return connError(err)
}

func scanRows(rows *sql.Rows) (*Rows, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Rows{Columns: columns, Types: make([]string, len(columns))}
	if types, err := rows.ColumnTypes(); err == nil {
		for i, ct := range types {
			result.Types[i] = ct.DatabaseTypeName()
		}
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = normalize(v, result.Types[i])
		}
		result.Data = append(result.Data, values)
	}

	if err := rows.Err(); err != nil {
		return nil, connError(err)
	}
	return result, nil
}

// normalize turns driver-specific values into ones database/sql accepts
// back as statement arguments.
func normalize(value any, typeName string) any {
	switch v := value.(type) {
	case duckdb.Decimal:
		return decimalText(v)
	case []byte:
		if len(v) == 16 && strings.EqualFold(typeName, "UUID") {
			if id, err := uuid.FromBytes(v); err == nil {
				return id.String()
			}
		}
	}
	return value
}

// decimalText renders the unscaled value with Scale fractional digits.
func decimalText(d duckdb.Decimal) string {
	if d.Value == nil {
		return "0"
	}

	sign := ""
	if d.Value.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(d.Value).String()
	scale := int(d.Scale)
	if scale == 0 {
		return sign + digits
	}
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	return sign + digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
}

// Some drivers do not report affected rows for DDL.
func rowsAffected(result sql.Result) int64 {
	n, err := result.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func connError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}
	return err
}
