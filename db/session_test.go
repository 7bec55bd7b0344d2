package db

import (
	"testing"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionView(t *testing.T) {
	session := newTestSession(newFakeConn(),
		core.Row{"id": 1, "name": "a"},
		core.Row{"id": 2, "name": "b"},
		core.Row{"id": 3, "name": "c"},
	)

	require.NoError(t, session.SetCell(0, "name", "x"))
	require.NoError(t, session.RecordDelete(2))
	position := session.RecordInsert(core.Row{"id": "4", "name": "d"})

	view := session.View()
	require.Len(t, view, 4)

	assert.Equal(t, RowUpdated, view[0].State)
	assert.Equal(t, "x", view[0].Row["name"])
	assert.Equal(t, RowClean, view[1].State)
	assert.Equal(t, RowDeleted, view[2].State)
	assert.Equal(t, "c", view[2].Row["name"])
	assert.Equal(t, RowInserted, view[3].State)
	assert.Equal(t, position, view[3].Position)

	assert.Equal(t, "*", RowUpdated.Marker())
	assert.Equal(t, "", RowClean.Marker())
}

func TestSessionSetCell(t *testing.T) {
	session := newTestSession(newFakeConn(), core.Row{"id": 1, "name": "a"})

	assert.Error(t, session.SetCell(0, "missing", "x"))
	assert.ErrorIs(t, session.SetCell(5, "name", "x"), ErrPositionNotFound)

	position := session.RecordInsert(core.Row{"id": "2"})
	require.NoError(t, session.SetCell(position, "name", "new"))

	row, err := session.CurrentRow(position)
	require.NoError(t, err)
	assert.Equal(t, core.Row{"id": "2", "name": "new"}, row)

	require.NoError(t, session.RecordDelete(0))
	_, err = session.CurrentRow(0)
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestSessionBaseline(t *testing.T) {
	session := newTestSession(newFakeConn(),
		core.Row{"id": 1, "name": nil},
		core.Row{"name": "b", "id": 2},
	)
	require.NoError(t, session.RecordDelete(0))

	result := session.Baseline()
	assert.Equal(t, []string{"id", "name"}, result.Columns)
	assert.Equal(t, [][]string{{"1", ""}, {"2", "b"}}, result.Data)
}
