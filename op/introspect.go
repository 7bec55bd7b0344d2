package op

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nickyhof/SQLExplorer/core"
	"github.com/nickyhof/SQLExplorer/store"
)

var ErrSchemaUnavailable = errors.New("schema unavailable")

const columnsQuery = `SELECT column_name, data_type, ordinal_position, is_nullable, column_default
FROM information_schema.columns
WHERE table_name = ? AND table_schema = current_schema()
ORDER BY ordinal_position`

const constraintsQuery = `SELECT constraint_type, array_to_string(constraint_column_names, ',')
FROM duckdb_constraints()
WHERE table_name = ? AND schema_name = current_schema()
  AND constraint_type IN ('PRIMARY KEY', 'UNIQUE')
ORDER BY constraint_index`

const indexesQuery = `SELECT index_name, is_unique, is_primary, CAST(expressions AS VARCHAR)
FROM duckdb_indexes()
WHERE table_name = ? AND schema_name = current_schema()
ORDER BY index_name`

// FetchColumns returns the table's columns in ordinal order.
func FetchColumns(ctx context.Context, conn store.Conn, table string) ([]core.Column, error) {
	rows, err := conn.Query(ctx, columnsQuery, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaUnavailable, table, err)
	}
	if rows.Len() == 0 {
		return nil, fmt.Errorf("%w: table %s not found", ErrSchemaUnavailable, table)
	}

	columns := make([]core.Column, 0, rows.Len())
	for _, values := range rows.Data {
		column := core.Column{
			Name:     core.Text(values[0]),
			Type:     core.Text(values[1]),
			Position: toInt(values[2]),
			Nullable: strings.EqualFold(core.Text(values[3]), "YES"),
		}
		if values[4] != nil {
			def := core.Text(values[4])
			column.Default = &def
		}
		columns = append(columns, column)
	}

	primary, err := fetchConstraints(ctx, conn, table)
	if err != nil {
		return nil, err
	}
	for _, index := range primary {
		if !index.Primary {
			continue
		}
		for _, col := range index.Columns {
			for i := range columns {
				if columns[i].Name == col.Name {
					columns[i].PrimaryKey = true
				}
			}
		}
	}

	return columns, nil
}

// FetchIndexes returns the primary key, unique constraints and explicitly
// created indexes of the table.
func FetchIndexes(ctx context.Context, conn store.Conn, table string) ([]core.IndexDescriptor, error) {
	indexes, err := fetchConstraints(ctx, conn, table)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, indexesQuery, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaUnavailable, table, err)
	}

	for _, values := range rows.Data {
		indexes = append(indexes, core.IndexDescriptor{
			Name:    core.Text(values[0]),
			Unique:  toBool(values[1]),
			Primary: toBool(values[2]),
			Columns: indexColumns(parseExpressions(core.Text(values[3]))),
		})
	}

	return indexes, nil
}

func fetchConstraints(ctx context.Context, conn store.Conn, table string) ([]core.IndexDescriptor, error) {
	rows, err := conn.Query(ctx, constraintsQuery, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSchemaUnavailable, table, err)
	}

	var indexes []core.IndexDescriptor
	seen := make(map[string]bool)

	for _, values := range rows.Data {
		primary := core.Text(values[0]) == "PRIMARY KEY"
		names := splitNames(core.Text(values[1]))

		name := table + "_" + strings.Join(names, "_") + "_key"
		if primary {
			name = table + "_pkey"
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		indexes = append(indexes, core.IndexDescriptor{
			Name:    name,
			Unique:  true,
			Primary: primary,
			Columns: indexColumns(names),
		})
	}

	// Primary key first
	sort.SliceStable(indexes, func(i, j int) bool {
		return indexes[i].Primary && !indexes[j].Primary
	})

	return indexes, nil
}

func indexColumns(names []string) []core.IndexColumn {
	columns := make([]core.IndexColumn, len(names))
	for i, name := range names {
		columns[i] = core.IndexColumn{Name: name, Seq: i}
	}
	return columns
}

func splitNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// parseExpressions reads the "[a, b]" rendering of an index's expression list.
func parseExpressions(expressions string) []string {
	expressions = strings.TrimSpace(expressions)
	expressions = strings.TrimPrefix(expressions, "[")
	expressions = strings.TrimSuffix(expressions, "]")

	names := splitNames(expressions)
	for i, name := range names {
		names[i] = strings.Trim(name, `"'`)
	}
	return names
}

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	default:
		n, _ := strconv.Atoi(core.Text(value))
		return n
	}
}

func toBool(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	b, _ := strconv.ParseBool(core.Text(value))
	return b
}
