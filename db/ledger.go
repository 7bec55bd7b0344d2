package db

import (
	"fmt"
	"sort"

	"github.com/nickyhof/SQLExplorer/core"
)

// Ledger is the ordered list of pending edits against a Snapshot. Entry
// order is application order. At most one entry exists per position.
type Ledger struct {
	snapshot   *Snapshot
	entries    []core.Change
	nextInsert int
}

func NewLedger(snapshot *Snapshot) *Ledger {
	return &Ledger{snapshot: snapshot}
}

// RecordInsert queues a new row and returns the position assigned to it.
// Insert positions never collide with the baseline or earlier inserts.
func (ledger *Ledger) RecordInsert(data core.Row) int {
	position := max(ledger.snapshot.Len(), ledger.nextInsert)
	ledger.nextInsert = position + 1

	ledger.entries = append(ledger.entries, core.Change{
		Kind:     core.InsertChange,
		Position: position,
		Data:     data.Clone(),
	})
	return position
}

// RecordUpdate records the latest full state of the row at position.
func (ledger *Ledger) RecordUpdate(position int, after core.Row) error {
	if i := ledger.find(position); i >= 0 {
		entry := &ledger.entries[i]
		switch entry.Kind {
		case core.InsertChange:
			entry.Data = after.Clone()
		case core.DeleteChange:
			return fmt.Errorf("%w: %d is deleted", ErrPositionNotFound, position)
		case core.UpdateChange:
			entry.After = after.Clone()
			if core.RowsEqual(entry.Before, entry.After) {
				ledger.remove(i)
			}
		}
		return nil
	}

	rs, err := ledger.snapshot.Get(position)
	if err != nil {
		return err
	}
	if core.RowsEqual(rs.Row, after) {
		return nil
	}

	ledger.entries = append(ledger.entries, core.Change{
		Kind:     core.UpdateChange,
		Position: position,
		Before:   rs.Row,
		After:    after.Clone(),
	})
	return nil
}

// RecordDelete marks the row at position for deletion. Deleting a pending
// insert simply forgets it.
func (ledger *Ledger) RecordDelete(position int) error {
	i := ledger.find(position)
	if i >= 0 {
		switch ledger.entries[i].Kind {
		case core.InsertChange:
			ledger.remove(i)
			return nil
		case core.DeleteChange:
			return nil
		}
	}

	rs, err := ledger.snapshot.Get(position)
	if err != nil {
		return err
	}

	if i >= 0 {
		ledger.remove(i)
	}
	ledger.entries = append(ledger.entries, core.Change{
		Kind:     core.DeleteChange,
		Position: position,
		Before:   rs.Row,
	})
	return nil
}

// Pending returns the entry recorded for position, if any.
func (ledger *Ledger) Pending(position int) (core.Change, bool) {
	if i := ledger.find(position); i >= 0 {
		return ledger.entries[i], true
	}
	return core.Change{}, false
}

func (ledger *Ledger) IsEmpty() bool {
	return len(ledger.entries) == 0
}

func (ledger *Ledger) Size() int {
	return len(ledger.entries)
}

func (ledger *Ledger) Clear() {
	ledger.entries = nil
	ledger.nextInsert = 0
}

// Entries returns a copy of the pending edits in application order.
func (ledger *Ledger) Entries() []core.Change {
	entries := make([]core.Change, len(ledger.entries))
	copy(entries, ledger.entries)
	return entries
}

// TouchedPositions returns the sorted positions that have a pending edit.
func (ledger *Ledger) TouchedPositions() []int {
	positions := make([]int, 0, len(ledger.entries))
	for _, entry := range ledger.entries {
		positions = append(positions, entry.Position)
	}
	sort.Ints(positions)
	return positions
}

func (ledger *Ledger) find(position int) int {
	for i, entry := range ledger.entries {
		if entry.Position == position {
			return i
		}
	}
	return -1
}

func (ledger *Ledger) remove(i int) {
	ledger.entries = append(ledger.entries[:i], ledger.entries[i+1:]...)
}
