package sql

import (
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
)

// BuildPredicate builds a WHERE clause that re-locates a row by the values it
// had when it was loaded. Every non-blank column becomes "col = ?"; NULL and
// blank columns are left out. Primary keys get no special treatment, so the
// predicate can match several rows when the table holds duplicates.
func BuildPredicate(columns []string, before core.Row) (string, []any, error) {
	var conditions []string
	var args []any

	for _, col := range before.Keys(columns) {
		value := before[col]
		if core.IsBlank(value) {
			continue
		}
		conditions = append(conditions, QuoteIdent(col)+" = ?")
		args = append(args, value)
	}

	if len(conditions) == 0 {
		return "", nil, ErrEmptyPredicate
	}

	return strings.Join(conditions, " AND "), args, nil
}
