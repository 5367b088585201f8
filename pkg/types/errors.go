package types

import "errors"

// Task list operation errors.
var (
	ErrParse               = errors.New("parse error")
	ErrMissingField        = errors.New("missing field")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrPattern             = errors.New("invalid pattern")
	ErrNoCriterion         = errors.New("no filter criterion specified")
	ErrConflictingCriteria = errors.New("more than one filter criterion specified")
	ErrMissingSortKey      = errors.New("missing sort key")
	ErrInvalidSortKey      = errors.New("invalid sort key")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrEmptyDescription    = errors.New("description must not be empty")
)

// Persistence errors.
var (
	ErrIO = errors.New("i/o error")
)
