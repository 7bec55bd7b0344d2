// Package SQLExplorer provides an interactive table browser with
// change tracking over a relational store.
//
// A table is loaded into an in-memory snapshot. Row edits are recorded in a
// ledger and applied all-or-nothing inside one store transaction on commit.
// Rows carry no stable identifier: each edited row is located again by
// matching on its original column values.
//
// # Quick Start
//
//	instance, _ := SQLExplorer.Open(SQLExplorer.Options{Journal: true})
//	engine := instance.Engine()
//
//	engine.Execute(ctx, "CREATE TABLE users (id INTEGER, name VARCHAR)")
//	engine.Execute(ctx, "INSERT INTO users VALUES (1, 'Alice')")
//
//	session, _ := engine.OpenTable(ctx, "users")
//	session.SetCell(0, "name", "Alicia")
//	session.RecordInsert(core.Row{"id": "2", "name": "Bob"})
//
//	result, _ := engine.Commit(ctx)
//	result.Display(os.Stdout)
//
// # Commits
//
// A commit synthesizes one parameterized statement per ledger entry, in
// the order the edits were made. Any failure rolls the transaction back and
// keeps the ledger, so the commit can be retried. A rollback discards the
// ledger and reloads the table.
//
// Successful commits can be recorded in a git-backed journal (see package
// ps), kept in memory or on disk and pushed to a remote.
package SQLExplorer
