// Package ps provides the commit journal.
//
// The journal is a Git repository managed with go-git. Every batch of
// edits that was applied to the store becomes one Git commit holding a
// JSON record of the executed statements, so the edit history can be
// browsed, diffed and pushed with ordinary Git tooling.
//
// # Memory Persistence
//
// For tests or a journal that lives as long as the process:
//
//	persistence, err := ps.NewMemoryPersistence()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # File Persistence
//
// For a journal kept on disk:
//
//	persistence, err := ps.NewFilePersistence("/path/to/journal")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Recording and reading batches
//
//	txn, err := persistence.RecordBatch(batch, identity)
//	batches, err := persistence.History("users") // newest first
//
// # Remotes
//
//	persistence.AddRemote("origin", "https://example.com/journal.git")
//	persistence.Push("origin", &ps.RemoteAuth{Type: ps.AuthTypeToken, Token: token})
package ps
