package op

import (
	"context"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/store"
)

const tablesQuery = `SELECT table_name
FROM information_schema.tables
WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
ORDER BY table_name`

type DatabaseOp struct {
	Conn store.Conn
}

func GetDatabase(conn store.Conn) *DatabaseOp {
	return &DatabaseOp{Conn: conn}
}

func (op *DatabaseOp) TableNames(ctx context.Context) ([]string, error) {
	rows, err := op.Conn.Query(ctx, tablesQuery)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, rows.Len())
	for _, values := range rows.Data {
		names = append(names, core.Text(values[0]))
	}
	return names, nil
}

func (op *DatabaseOp) GetTable(ctx context.Context, name string) (*TableOp, error) {
	return GetTable(ctx, op.Conn, name)
}

func (op *DatabaseOp) Query(ctx context.Context, query string, args ...any) (*store.Rows, error) {
	return op.Conn.Query(ctx, query, args...)
}
