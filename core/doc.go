// Package core provides core types used throughout SQLExplorer.
//
// The package defines fundamental types like Identity, Table, Column,
// IndexDescriptor, Row and Change, plus the value normalization rules the
// change ledger and statement synthesizer agree on.
//
// # Identity
//
// Identity identifies the author of journal entries (Git commit author):
//
//	identity := core.Identity{
//	    Name:  "John Doe",
//	    Email: "john@example.com",
//	}
//
// # Table Definition
//
// Tables are read from the live store, never declared by hand:
//
//	table := core.Table{
//	    Name: "users",
//	    Columns: []core.Column{
//	        {Name: "id", Type: "INTEGER", Position: 1, PrimaryKey: true},
//	        {Name: "name", Type: "VARCHAR", Position: 2, Nullable: true},
//	    },
//	}
//
// # Values
//
// Rows are plain maps from column name to the value the driver returned (or
// the text the user typed). Two values are the same when their display text
// is the same, so NULL and an empty cell compare equal:
//
//	core.SameValue(nil, "")        // true
//	core.SameValue(int32(1), "1")  // true
//	core.IsBlank("   ")            // true
package core
