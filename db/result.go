package db

import (
	"fmt"
	"io"
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/ps"
	"github.com/nickyhof/SQLExplorer/sql"
	"github.com/nickyhof/SQLExplorer/store"
)

type ResultType int

const (
	QueryResultType ResultType = iota
	CommitResultType
)

type Result interface {
	Type() ResultType
	Display(w io.Writer)
}

type QueryResult struct {
	Columns          []string
	Data             [][]string
	RecordsRead      int
	ExecutionTimeSec float64
}

type CommitResult struct {
	Transaction      ps.Transaction
	Inserted         int
	Updated          int
	Deleted          int
	RowsAffected     int64
	Statements       []sql.Statement
	RowCount         int
	ExecutionTimeSec float64
}

func (result QueryResult) Type() ResultType {
	return QueryResultType
}

func (result CommitResult) Type() ResultType {
	return CommitResultType
}

// Changes is the number of ledger entries the commit applied.
func (result CommitResult) Changes() int {
	return result.Inserted + result.Updated + result.Deleted
}

func newQueryResult(rows *store.Rows) QueryResult {
	data := make([][]string, len(rows.Data))
	for i, values := range rows.Data {
		data[i] = make([]string, len(values))
		for j, v := range values {
			data[i][j] = core.Text(v)
		}
	}

	return QueryResult{
		Columns:     rows.Columns,
		Data:        data,
		RecordsRead: len(data),
	}
}

// formatDuration formats a duration in human-readable form
func formatDuration(secs float64) string {
	switch {
	case secs < 0.001:
		return "<1ms"
	case secs < 1:
		return fmt.Sprintf("%dms", int(secs*1000))
	case secs < 10:
		return fmt.Sprintf("%.1fs", secs)
	case secs < 60:
		return fmt.Sprintf("%ds", int(secs))
	}

	mins := int(secs / 60)
	remainSecs := int(secs) % 60
	if remainSecs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%ds", mins, remainSecs)
}

func (result QueryResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

func (result CommitResult) ExecutionTime() string {
	return formatDuration(result.ExecutionTimeSec)
}

func (result QueryResult) Display(w io.Writer) {
	if len(result.Data) > 0 {
		data := NewTable(w)
		data.Header(result.Columns)
		data.Bulk(result.Data)
		data.Render()
	}

	fmt.Fprintf(w, "%d rows (%s)\n", result.RecordsRead, result.ExecutionTime())
}

func (result CommitResult) Display(w io.Writer) {
	var parts []string

	if result.Inserted > 0 {
		parts = append(parts, fmt.Sprintf("%d row(s) inserted", result.Inserted))
	}
	if result.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d row(s) updated", result.Updated))
	}
	if result.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d row(s) deleted", result.Deleted))
	}
	if len(parts) == 0 && result.RowsAffected > 0 {
		parts = append(parts, fmt.Sprintf("%d row(s) affected", result.RowsAffected))
	}

	if len(parts) == 0 {
		fmt.Fprintf(w, "OK (%s)\n", result.ExecutionTime())
	} else {
		fmt.Fprintf(w, "%s (%s)\n", strings.Join(parts, ", "), result.ExecutionTime())
	}

	if result.Changes() > 0 {
		fmt.Fprintf(w, "%d change(s) applied, table now has %d row(s)\n", result.Changes(), result.RowCount)
	}
}
