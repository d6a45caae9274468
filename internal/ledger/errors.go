package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteDraft means the name or amount was left blank. UIs
	// ignore it and keep the form as typed.
	ErrIncompleteDraft = errors.New("name and amount are required")
	ErrInvalidAmount   = errors.New("amount is not a valid number")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotFound        = errors.New("expense not found")

	// ErrMalformedData means the persisted entry could not be decoded.
	// The store continues with an empty list.
	ErrMalformedData = errors.New("stored expenses are malformed")
)

// PersistError reports that a mutation was applied in memory but could
// not be written to storage. The in-memory list stays authoritative for
// the session.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: saving expenses: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
