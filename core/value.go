package core

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Row maps column names to values. A nil value is SQL NULL.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (row Row) Clone() Row {
	if row == nil {
		return nil
	}
	clone := make(Row, len(row))
	for k, v := range row {
		clone[k] = v
	}
	return clone
}

// Keys returns the row's columns ordered by columns first, then any
// remaining keys sorted by name.
func (row Row) Keys(columns []string) []string {
	keys := make([]string, 0, len(row))
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if _, ok := row[col]; ok && !seen[col] {
			keys = append(keys, col)
			seen[col] = true
		}
	}

	var extra []string
	for k := range row {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	return append(keys, extra...)
}

// Text renders a value the way the grid displays it.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsBlank reports whether the value is NULL or only whitespace.
func IsBlank(value any) bool {
	if value == nil {
		return true
	}
	return strings.TrimSpace(Text(value)) == ""
}

// SameValue compares two values by display text.
func SameValue(a, b any) bool {
	return Text(a) == Text(b)
}

// RowsEqual compares the union of columns present in either row.
func RowsEqual(a, b Row) bool {
	for k, v := range a {
		if !SameValue(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if _, ok := a[k]; !ok && !SameValue(nil, v) {
			return false
		}
	}
	return true
}

// Trimmed returns the value with surrounding whitespace removed when it is
// textual; other values are returned unchanged.
func Trimmed(value any) any {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	default:
		return value
	}
}
