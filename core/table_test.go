package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexColumnNamesFollowSeq(t *testing.T) {
	index := IndexDescriptor{
		Name: "idx_users_name_email",
		Columns: []IndexColumn{
			{Name: "email", Seq: 2},
			{Name: "name", Seq: 1},
			{Name: "id", Seq: 3},
		},
	}

	assert.Equal(t, []string{"name", "email", "id"}, index.ColumnNames())
	assert.Equal(t, "email", index.Columns[0].Name)
}

func TestTableColumn(t *testing.T) {
	table := Table{Name: "users", Columns: []Column{{Name: "id", PrimaryKey: true}, {Name: "name"}}}

	col, ok := table.Column("id")
	assert.True(t, ok)
	assert.True(t, col.PrimaryKey)

	_, ok = table.Column("nope")
	assert.False(t, ok)
	assert.Equal(t, []string{"id", "name"}, table.ColumnNames())
}
