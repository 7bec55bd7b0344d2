package op

import (
	"context"
	"testing"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *store.DB {
	conn, err := store.Open(store.DefaultDriver, "")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	for _, stmt := range []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			name VARCHAR NOT NULL,
			email VARCHAR UNIQUE,
			age INTEGER DEFAULT 18
		)`,
		"CREATE INDEX idx_users_name ON users (name)",
		"CREATE TABLE tags (label VARCHAR, weight DOUBLE)",
		"INSERT INTO users VALUES (1, 'Alice', 'alice@example.com', 30), (2, 'Bob', NULL, 25), (3, 'Carol', 'carol@example.com', 41)",
	} {
		_, err := conn.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	return conn
}

func TestFetchColumns(t *testing.T) {
	conn := setupStore(t)

	columns, err := FetchColumns(context.Background(), conn, "users")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
		assert.Equal(t, i+1, col.Position)
	}
	assert.Equal(t, []string{"id", "name", "email", "age"}, names)

	assert.Equal(t, "INTEGER", columns[0].Type)
	assert.True(t, columns[0].PrimaryKey)
	assert.False(t, columns[0].Nullable)
	assert.False(t, columns[1].Nullable)
	assert.True(t, columns[2].Nullable)
	assert.False(t, columns[2].PrimaryKey)
	require.NotNil(t, columns[3].Default)
	assert.Contains(t, *columns[3].Default, "18")
	assert.Nil(t, columns[1].Default)
}

func TestFetchColumnsMissingTable(t *testing.T) {
	conn := setupStore(t)

	_, err := FetchColumns(context.Background(), conn, "nope")
	assert.ErrorIs(t, err, ErrSchemaUnavailable)
}

func TestFetchColumnsClosedConnection(t *testing.T) {
	conn := setupStore(t)
	require.NoError(t, conn.Close())

	_, err := FetchColumns(context.Background(), conn, "users")
	assert.ErrorIs(t, err, ErrSchemaUnavailable)
	assert.ErrorIs(t, err, store.ErrConnectionClosed)
}

func TestFetchIndexes(t *testing.T) {
	conn := setupStore(t)

	indexes, err := FetchIndexes(context.Background(), conn, "users")
	require.NoError(t, err)
	require.Len(t, indexes, 3)

	assert.Equal(t, core.IndexDescriptor{
		Name:    "users_pkey",
		Unique:  true,
		Primary: true,
		Columns: []core.IndexColumn{{Name: "id", Seq: 0}},
	}, indexes[0])

	assert.Equal(t, "users_email_key", indexes[1].Name)
	assert.True(t, indexes[1].Unique)
	assert.False(t, indexes[1].Primary)
	assert.Equal(t, []string{"email"}, indexes[1].ColumnNames())

	assert.Equal(t, "idx_users_name", indexes[2].Name)
	assert.False(t, indexes[2].Unique)
	assert.Equal(t, []string{"name"}, indexes[2].ColumnNames())
}

func TestIndexStats(t *testing.T) {
	ctx := context.Background()
	conn := setupStore(t)

	tableOp, err := GetTable(ctx, conn, "users")
	require.NoError(t, err)
	require.Len(t, tableOp.Table.Indexes, 3)

	entries := map[string]int{}
	for _, index := range tableOp.Table.Indexes {
		stats, err := tableOp.IndexStats(ctx, index)
		require.NoError(t, err)
		assert.True(t, stats.Active, index.Name)
		entries[index.Name] = stats.Entries
	}
	assert.Equal(t, map[string]int{"users_pkey": 3, "users_email_key": 2, "idx_users_name": 3}, entries)

	_, err = conn.Exec(ctx, "DROP INDEX idx_users_name")
	require.NoError(t, err)

	stats, err := tableOp.IndexStats(ctx, tableOp.Table.Indexes[2])
	require.NoError(t, err)
	assert.False(t, stats.Active)
	assert.Equal(t, 3, stats.Entries)
}

func TestFetchIndexesNone(t *testing.T) {
	conn := setupStore(t)

	indexes, err := FetchIndexes(context.Background(), conn, "tags")
	require.NoError(t, err)
	assert.Empty(t, indexes)
}

func TestGetTable(t *testing.T) {
	ctx := context.Background()
	conn := setupStore(t)

	tableOp, err := GetTable(ctx, conn, "users")
	require.NoError(t, err)
	assert.Equal(t, "users", tableOp.Table.Name)
	assert.Equal(t, []string{"id", "name", "email", "age"}, tableOp.Table.ColumnNames())

	pk, err := tableOp.PrimaryKey()
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, pk)

	count, err := tableOp.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rows, err := tableOp.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Alice", rows[0]["name"])
	assert.Nil(t, rows[1]["email"])
}

func TestGetTableMissing(t *testing.T) {
	_, err := GetTable(context.Background(), setupStore(t), "missing")
	assert.ErrorIs(t, err, ErrSchemaUnavailable)
}

func TestPrimaryKeyMissing(t *testing.T) {
	tableOp, err := GetTable(context.Background(), setupStore(t), "tags")
	require.NoError(t, err)

	_, err = tableOp.PrimaryKey()
	assert.ErrorIs(t, err, ErrNoPrimaryKey)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	tableOp, err := GetTable(ctx, setupStore(t), "users")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "email"}, tableOp.TextColumns())

	hits, err := tableOp.Search(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, hits.Len())

	hits, err = tableOp.Search(ctx, "Bob")
	require.NoError(t, err)
	require.Equal(t, 1, hits.Len())
	assert.EqualValues(t, 2, hits.Row(0)["id"])

	hits, err = tableOp.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Zero(t, hits.Len())

	// Search is read-only
	count, err := tableOp.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTableNames(t *testing.T) {
	ctx := context.Background()
	dbOp := GetDatabase(setupStore(t))

	names, err := dbOp.TableNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tags", "users"}, names)

	tableOp, err := dbOp.GetTable(ctx, "tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "weight"}, tableOp.Table.ColumnNames())

	rows, err := dbOp.Query(ctx, "SELECT name FROM users WHERE age > ?", 26)
	require.NoError(t, err)
	assert.Equal(t, 2, rows.Len())
}

func TestParseExpressions(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseExpressions("[a, b]"))
	assert.Equal(t, []string{"name"}, parseExpressions(`['"name"']`))
	assert.Empty(t, parseExpressions("[]"))
}
