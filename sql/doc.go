// Package sql provides SQL lexing and DML synthesis for SQLExplorer.
//
// The package never talks to a database. It tokenizes statements typed by
// the user, decides whether they return rows, and turns pending row edits
// into parameterized statements.
//
// # Lexer Usage
//
//	lexer := sql.NewLexer("SELECT * FROM users")
//	for {
//	    token := lexer.NextToken()
//	    if token.Type == sql.EOF {
//	        break
//	    }
//	    fmt.Printf("Token: %s\n", token)
//	}
//
// # Classification
//
//	sql.Classify("SELECT 1")          // QueryStatement
//	sql.Classify("DELETE FROM users") // ExecStatement
//	sql.SplitStatements("SELECT 1; SELECT 2")
//
// # Synthesis
//
// Rows are re-located by the values they had when they were loaded:
//
//	statement, err := sql.Synthesize(core.Change{
//	    Kind:   core.UpdateChange,
//	    Before: core.Row{"id": 1, "name": "a"},
//	    After:  core.Row{"id": 1, "name": "b"},
//	}, table)
//	// UPDATE users SET name = ? WHERE id = ? AND name = ?  [b 1 a]
//
// Identifiers are emitted bare unless they are reserved words or contain
// characters outside [A-Za-z0-9_], in which case they are double-quoted.
package sql
