package commands

import (
	"fmt"

	"property-matcher/models"
)

// DuplicateEntityError is returned when an add or edit would create a
// second entry for the same property or buyer.
type DuplicateEntityError struct {
	Actor models.Actor
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("This %s already exists in the address book", e.Actor)
}

// InvalidIndexError is returned for a display index outside [1, Size].
type InvalidIndexError struct {
	Actor models.Actor
	Index int
	Size  int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("The %s index provided is invalid: %d is not between 1 and %d", e.Actor, e.Index, e.Size)
}

// CommandError wraps a failure of an external collaborator during execution.
type CommandError struct {
	Op  string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
