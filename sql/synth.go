package sql

import (
	"fmt"
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
)

// Statement is a parameterized DML statement using "?" placeholders.
type Statement struct {
	SQL  string
	Args []any
}

func (statement Statement) String() string {
	return fmt.Sprintf("%s %v", statement.SQL, statement.Args)
}

// Synthesize turns one ledger entry into the statement that applies it.
// It never touches a connection.
func Synthesize(change core.Change, table core.Table) (Statement, error) {
	switch change.Kind {
	case core.InsertChange:
		return synthesizeInsert(change, table)
	case core.UpdateChange:
		return synthesizeUpdate(change, table)
	case core.DeleteChange:
		return synthesizeDelete(change, table)
	default:
		return Statement{}, fmt.Errorf("%w: %v", ErrUnknownChange, change.Kind)
	}
}

func synthesizeInsert(change core.Change, table core.Table) (Statement, error) {
	var columns []string
	var placeholders []string
	var args []any

	for _, col := range change.Data.Keys(table.ColumnNames()) {
		value := change.Data[col]
		if core.IsBlank(value) {
			// Leave it to the store's DEFAULT / NULL handling
			continue
		}
		columns = append(columns, QuoteIdent(col))
		placeholders = append(placeholders, "?")
		args = append(args, core.Trimmed(value))
	}

	if len(columns) == 0 {
		return Statement{}, ErrNothingToInsert
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdent(table.Name), strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	return Statement{SQL: sql, Args: args}, nil
}

func synthesizeUpdate(change core.Change, table core.Table) (Statement, error) {
	var assignments []string
	var args []any

	for _, col := range change.After.Keys(table.ColumnNames()) {
		after := change.After[col]
		if core.SameValue(change.Before[col], after) {
			continue
		}
		assignments = append(assignments, QuoteIdent(col)+" = ?")
		args = append(args, after)
	}

	if len(assignments) == 0 {
		return Statement{}, ErrNoEffectiveChange
	}

	where, whereArgs, err := BuildPredicate(table.ColumnNames(), change.Before)
	if err != nil {
		return Statement{}, err
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		QuoteIdent(table.Name), strings.Join(assignments, ", "), where)

	return Statement{SQL: sql, Args: append(args, whereArgs...)}, nil
}

func synthesizeDelete(change core.Change, table core.Table) (Statement, error) {
	where, args, err := BuildPredicate(table.ColumnNames(), change.Before)
	if err != nil {
		return Statement{}, err
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s", QuoteIdent(table.Name), where)
	return Statement{SQL: sql, Args: args}, nil
}

// QuoteIdent returns name unchanged when it is a plain, non-reserved
// identifier and double-quoted otherwise.
func QuoteIdent(name string) string {
	if isPlainIdentifier(name) && !IsReserved(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func isPlainIdentifier(name string) bool {
	if name == "" || !isIdentifierStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlphaNumeric(name[i]) {
			return false
		}
	}
	return true
}
