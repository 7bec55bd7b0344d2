package core

import "sort"

type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Column struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Position   int     `json:"position"`
	Nullable   bool    `json:"nullable"`
	Default    *string `json:"default,omitempty"`
	PrimaryKey bool    `json:"primaryKey"`
}

type IndexColumn struct {
	Name string `json:"name"`
	Seq  int    `json:"seq"`
}

type IndexDescriptor struct {
	Name    string        `json:"name"`
	Unique  bool          `json:"unique"`
	Primary bool          `json:"primary"`
	Columns []IndexColumn `json:"columns"`
}

// ColumnNames returns the index columns ordered by sequence number.
func (index IndexDescriptor) ColumnNames() []string {
	columns := make([]IndexColumn, len(index.Columns))
	copy(columns, index.Columns)
	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Seq < columns[j].Seq })

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return names
}

type Table struct {
	Name    string            `json:"name"`
	Columns []Column          `json:"columns"`
	Indexes []IndexDescriptor `json:"indexes"`
}

// ColumnNames returns the column names in the store's ordinal order.
func (table Table) ColumnNames() []string {
	names := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		names[i] = col.Name
	}
	return names
}

func (table Table) Column(name string) (Column, bool) {
	for _, col := range table.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}
