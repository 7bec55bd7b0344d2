// Package store provides the live connection to the relational store.
//
// A Conn is a thin layer over database/sql. The DuckDB driver is registered
// by default, so an in-memory database is one call away:
//
//	conn, err := store.Open("duckdb", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	conn.Exec(ctx, "CREATE TABLE users (id INTEGER PRIMARY KEY, name VARCHAR)")
//	rows, _ := conn.Query(ctx, "SELECT * FROM users")
//
// Query results are fully materialized into Rows. Statements executed
// through a Tx are invisible to other callers until Commit.
package store
