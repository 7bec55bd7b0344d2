// Package db provides the change-tracking engine of SQLExplorer.
//
// The Engine type is the main entry point. It opens a table into a Session,
// records row edits against the loaded baseline, and applies them in a
// single transaction on Commit.
//
// # Engine Usage
//
//	engine := db.NewEngine(conn, db.WithLogger(logger))
//	session, err := engine.OpenTable(ctx, "users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session.SetCell(0, "name", "Alicia")
//	session.RecordInsert(core.Row{"id": "4", "name": "Dave"})
//	session.RecordDelete(2)
//
//	result, err := engine.Commit(ctx)
//	if errors.Is(err, db.ErrCommitFailed) {
//	    // nothing was applied, the edits are still pending
//	}
//	result.Display(os.Stdout)
//
// Rows carry no stable identifier. Updates and deletes re-locate their row
// by every non-blank value it had when it was loaded, so tables with
// duplicate rows may see more than one row affected.
//
// # Result Types
//
// There are two result types:
//   - QueryResult: returned by statements that produce rows
//   - CommitResult: returned by Commit and by ad-hoc writes
package db
