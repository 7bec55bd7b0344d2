// Package op provides schema introspection and read operations over a live
// store connection.
//
// The op package sits between the engine (db/) and the connection (store/).
// Nothing in this package writes to the store.
//
// # DatabaseOp
//
//	dbOp := op.GetDatabase(conn)
//	tables, _ := dbOp.TableNames(ctx)      // List base tables
//	rows, _ := dbOp.Query(ctx, "SELECT 1") // Ad-hoc query
//
// # TableOp
//
// TableOp bundles a table's columns and indexes:
//
//	tableOp, err := op.GetTable(ctx, conn, "users")
//	if errors.Is(err, op.ErrSchemaUnavailable) {
//	    // table missing or connection closed
//	}
//
//	rows, _ := tableOp.Scan(ctx)              // All rows in column order
//	count, _ := tableOp.Count(ctx)            // Row count
//	hits, _ := tableOp.Search(ctx, "alice")   // LIKE over text columns
//	pk, _ := tableOp.PrimaryKey()             // Display only
//
// # Architecture
//
// The layering is:
//
//	SQL lexer + synthesizer (sql/)
//	     ↓
//	Engine (db/)
//	     ↓
//	Operations (op/)     ← This package
//	     ↓
//	Connection (store/)
//	     ↓
//	DuckDB (database/sql)
package op
