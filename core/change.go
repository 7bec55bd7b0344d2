package core

import "fmt"

type ChangeKind int

const (
	InsertChange ChangeKind = iota
	UpdateChange
	DeleteChange
)

func (kind ChangeKind) String() string {
	switch kind {
	case InsertChange:
		return "insert"
	case UpdateChange:
		return "update"
	case DeleteChange:
		return "delete"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

// Change is one pending edit of a loaded table.
//
// Insert uses Data; Update uses Before and After; Delete uses Before.
type Change struct {
	Kind     ChangeKind
	Position int
	Data     Row
	Before   Row
	After    Row
}

func (change Change) String() string {
	return fmt.Sprintf("Change{Kind: %s, Position: %d}", change.Kind, change.Position)
}
