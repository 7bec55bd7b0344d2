package sql

import "errors"

var (
	ErrEmptyPredicate    = errors.New("every column of the original row is NULL or blank, nothing to match on")
	ErrNothingToInsert   = errors.New("row has no non-blank values to insert")
	ErrNoEffectiveChange = errors.New("row has no changed columns")
	ErrUnknownChange     = errors.New("unknown change kind")
)
