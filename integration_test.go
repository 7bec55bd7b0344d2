package SQLExplorer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/db"
	"github.com/nickyhof/SQLExplorer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFunc is the signature for test functions that work with any journal
type TestFunc func(t *testing.T, instance *Instance, engine *db.Engine)

// runWithBothJournals runs a test function with a memory and a file journal
func runWithBothJournals(t *testing.T, testFunc TestFunc) {
	identity := core.Identity{Name: "test", Email: "test@test.com"}

	t.Run("Memory", func(t *testing.T) {
		instance, err := Open(Options{Journal: true, Identity: identity})
		require.NoError(t, err)
		defer instance.Close()
		testFunc(t, instance, instance.Engine())
	})

	t.Run("File", func(t *testing.T) {
		instance, err := Open(Options{Journal: true, JournalDir: t.TempDir(), Identity: identity})
		require.NoError(t, err)
		defer instance.Close()
		testFunc(t, instance, instance.Engine())
	})
}

func seed(t *testing.T, engine *db.Engine) {
	t.Helper()

	ctx := context.Background()
	for _, stmt := range []string{
		"CREATE TABLE employees (id INTEGER PRIMARY KEY, name VARCHAR NOT NULL, department VARCHAR, salary INTEGER)",
		"INSERT INTO employees VALUES (1, 'Alice', 'Engineering', 100000), (2, 'Bob', 'Sales', 80000), (3, 'Carol', NULL, 90000)",
	} {
		_, err := engine.Execute(ctx, stmt)
		require.NoError(t, err)
	}
}

func queryNames(t *testing.T, conn store.Conn) []string {
	t.Helper()

	rows, err := conn.Query(context.Background(), "SELECT name FROM employees ORDER BY id")
	require.NoError(t, err)

	names := make([]string, rows.Len())
	for i, values := range rows.Data {
		names[i] = core.Text(values[0])
	}
	return names
}

// TestIntegrationWorkflow edits, commits and journals a table end to end
func TestIntegrationWorkflow(t *testing.T) {
	runWithBothJournals(t, func(t *testing.T, instance *Instance, engine *db.Engine) {
		ctx := context.Background()
		seed(t, engine)

		tables, err := engine.Tables(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"employees"}, tables)

		session, err := engine.OpenTable(ctx, "employees")
		require.NoError(t, err)
		require.Equal(t, 3, session.Snapshot().Len())

		require.NoError(t, session.SetCell(1, "department", "Marketing"))
		require.NoError(t, session.RecordDelete(2))
		session.RecordInsert(core.Row{"id": 4, "name": "Dave", "department": "", "salary": 70000})

		assert.Equal(t, []int{1, 2, 3}, session.Ledger().TouchedPositions())

		result, err := engine.Commit(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 1, result.Deleted)
		assert.Equal(t, int64(3), result.RowsAffected)
		assert.Equal(t, 3, result.RowCount)
		assert.NotEmpty(t, result.Transaction.Id)
		assert.True(t, session.Ledger().IsEmpty())

		assert.Equal(t, []string{"Alice", "Bob", "Dave"}, queryNames(t, instance.Store))

		rows, err := instance.Store.Query(ctx, "SELECT department FROM employees WHERE id = 2")
		require.NoError(t, err)
		assert.Equal(t, "Marketing", core.Text(rows.Data[0][0]))

		history, err := instance.Persistence.History("employees")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, session.ID, history[0].Session)
		assert.Len(t, history[0].Statements, 3)
		assert.Equal(t, "insert", history[0].Statements[2].Kind)
	})
}

// TestIntegrationCommitFailureKeepsLedger checks that a failing entry rolls
// back every statement before it
func TestIntegrationCommitFailureKeepsLedger(t *testing.T) {
	runWithBothJournals(t, func(t *testing.T, instance *Instance, engine *db.Engine) {
		ctx := context.Background()
		seed(t, engine)

		session, err := engine.OpenTable(ctx, "employees")
		require.NoError(t, err)

		require.NoError(t, session.SetCell(0, "name", "Alicia"))
		// duplicate primary key
		session.RecordInsert(core.Row{"id": 2, "name": "Duplicate"})

		_, err = engine.Commit(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, db.ErrCommitFailed)

		var failed *db.CommitFailedError
		require.True(t, errors.As(err, &failed))
		assert.Equal(t, 1, failed.Index)
		assert.Equal(t, core.InsertChange, failed.Change.Kind)

		assert.Equal(t, 2, session.Ledger().Size())
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, queryNames(t, instance.Store))

		history, err := instance.Persistence.History("employees")
		require.NoError(t, err)
		assert.Empty(t, history)

		discarded, err := engine.Rollback(ctx, func(pending int) bool { return pending == 2 })
		require.NoError(t, err)
		assert.Equal(t, 2, discarded)
		assert.True(t, session.Ledger().IsEmpty())
		assert.Equal(t, 3, session.Snapshot().Len())
	})
}

func TestIntegrationPendingGuard(t *testing.T) {
	runWithBothJournals(t, func(t *testing.T, instance *Instance, engine *db.Engine) {
		ctx := context.Background()
		seed(t, engine)

		session, err := engine.OpenTable(ctx, "employees")
		require.NoError(t, err)
		require.NoError(t, session.RecordDelete(0))

		_, err = engine.OpenTable(ctx, "employees")
		assert.ErrorIs(t, err, db.ErrPendingChanges)
		assert.ErrorIs(t, engine.Close(), db.ErrPendingChanges)

		_, err = engine.Rollback(ctx, func(int) bool { return false })
		assert.ErrorIs(t, err, db.ErrRollbackDeclined)
		assert.Equal(t, 1, session.Ledger().Size())

		require.NoError(t, engine.CloseDiscarding())
		_, err = instance.Store.Query(ctx, "SELECT 1")
		assert.ErrorIs(t, err, store.ErrConnectionClosed)
	})
}

func TestIntegrationAdHocQuery(t *testing.T) {
	instance, err := Open(Options{})
	require.NoError(t, err)
	defer instance.Close()
	assert.Nil(t, instance.Persistence)

	engine := instance.Engine()
	seed(t, engine)
	ctx := context.Background()

	result, err := engine.Execute(ctx, "SELECT name FROM employees WHERE salary > 85000 ORDER BY id")
	require.NoError(t, err)
	require.Equal(t, db.QueryResultType, result.Type())
	assert.Equal(t, [][]string{{"Alice"}, {"Carol"}}, result.(db.QueryResult).Data)

	result, err = engine.Execute(ctx, "UPDATE employees SET salary = salary + 1")
	require.NoError(t, err)
	require.Equal(t, db.CommitResultType, result.Type())
	assert.Equal(t, int64(3), result.(db.CommitResult).RowsAffected)

	var buf bytes.Buffer
	result.Display(&buf)
	assert.Contains(t, buf.String(), "3 row(s) affected")
}
