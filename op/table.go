package op

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/sql"
	"github.com/nickyhof/SQLExplorer/store"
)

var ErrNoPrimaryKey = errors.New("no primary key found")

type TableOp struct {
	Table core.Table
	Conn  store.Conn
}

func GetTable(ctx context.Context, conn store.Conn, tableName string) (*TableOp, error) {
	columns, err := FetchColumns(ctx, conn, tableName)
	if err != nil {
		return nil, err
	}

	indexes, err := FetchIndexes(ctx, conn, tableName)
	if err != nil {
		return nil, err
	}

	return &TableOp{
		Table: core.Table{
			Name:    tableName,
			Columns: columns,
			Indexes: indexes,
		},
		Conn: conn,
	}, nil
}

// PrimaryKey returns the primary key columns. It is informational only; rows
// are never matched by key.
func (op *TableOp) PrimaryKey() ([]string, error) {
	var pk []string
	for _, col := range op.Table.Columns {
		if col.PrimaryKey {
			pk = append(pk, col.Name)
		}
	}

	if len(pk) == 0 {
		return nil, ErrNoPrimaryKey
	}
	return pk, nil
}

// Scan reads every row of the table with keys in column order.
func (op *TableOp) Scan(ctx context.Context) ([]core.Row, error) {
	rows, err := op.Conn.Query(ctx, fmt.Sprintf("SELECT %s FROM %s", op.selectList(), sql.QuoteIdent(op.Table.Name)))
	if err != nil {
		return nil, err
	}
	return rows.Maps(), nil
}

func (op *TableOp) Count(ctx context.Context) (int, error) {
	rows, err := op.Conn.Query(ctx, "SELECT COUNT(*) FROM "+sql.QuoteIdent(op.Table.Name))
	if err != nil {
		return 0, err
	}
	if rows.Len() == 0 {
		return 0, nil
	}
	return toInt(rows.Data[0][0]), nil
}

// IndexStats describes an index as the store currently sees it. Entries
// counts rows whose indexed columns are all non-NULL.
type IndexStats struct {
	Active  bool
	Entries int
}

// IndexStats reports whether index still exists and how many rows it covers.
func (op *TableOp) IndexStats(ctx context.Context, index core.IndexDescriptor) (IndexStats, error) {
	current, err := FetchIndexes(ctx, op.Conn, op.Table.Name)
	if err != nil {
		return IndexStats{}, err
	}

	var stats IndexStats
	for _, existing := range current {
		if existing.Name == index.Name {
			stats.Active = true
			break
		}
	}

	var conditions []string
	for _, name := range index.ColumnNames() {
		// expression columns are not plain table columns
		if _, ok := op.Table.Column(name); ok {
			conditions = append(conditions, sql.QuoteIdent(name)+" IS NOT NULL")
		}
	}

	query := "SELECT COUNT(*) FROM " + sql.QuoteIdent(op.Table.Name)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := op.Conn.Query(ctx, query)
	if err != nil {
		return IndexStats{}, err
	}
	if rows.Len() > 0 {
		stats.Entries = toInt(rows.Data[0][0])
	}
	return stats, nil
}

// TextColumns returns the columns whose type holds character data.
func (op *TableOp) TextColumns() []string {
	var names []string
	for _, col := range op.Table.Columns {
		t := strings.ToUpper(col.Type)
		if strings.Contains(t, "CHAR") || strings.Contains(t, "TEXT") || strings.Contains(t, "STRING") {
			names = append(names, col.Name)
		}
	}
	return names
}

// Search returns rows where any text column contains text. The result is a
// read-only view; it never replaces a loaded baseline.
func (op *TableOp) Search(ctx context.Context, text string) (*store.Rows, error) {
	columns := op.TextColumns()
	if len(columns) == 0 {
		return &store.Rows{Columns: op.Table.ColumnNames()}, nil
	}

	conditions := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conditions[i] = sql.QuoteIdent(col) + " LIKE ?"
		args[i] = "%" + text + "%"
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		op.selectList(), sql.QuoteIdent(op.Table.Name), strings.Join(conditions, " OR "))

	return op.Conn.Query(ctx, query, args...)
}

func (op *TableOp) selectList() string {
	names := op.Table.ColumnNames()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = sql.QuoteIdent(name)
	}
	return strings.Join(quoted, ", ")
}
