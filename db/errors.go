package db

import (
	"errors"
	"fmt"

	"github.com/nickyhof/SQLExplorer/core"
)

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrCommitFailed     = errors.New("commit failed")
	ErrPendingChanges   = errors.New("table has uncommitted changes")
	ErrRollbackDeclined = errors.New("rollback declined")
	ErrNoActiveTable    = errors.New("no table is open")
	ErrEmptyStatement   = errors.New("empty statement")
	ErrStaleSnapshot    = errors.New("table snapshot is stale, reload before editing")
)

// CommitFailedError reports the ledger entry that aborted a commit. Index is
// -1 when the transaction itself could not be started or committed.
type CommitFailedError struct {
	Index  int
	Change core.Change
	Cause  error
}

func (e *CommitFailedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", ErrCommitFailed, e.Cause)
	}
	return fmt.Sprintf("%s at change %d (%s row %d): %v", ErrCommitFailed, e.Index+1, e.Change.Kind, e.Change.Position, e.Cause)
}

func (e *CommitFailedError) Unwrap() []error {
	return []error{ErrCommitFailed, e.Cause}
}
