package services

import "fmt"

// ValidationError covers malformed or out-of-range submission input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError is returned when a requested status change is not an
// edge in the entity's transition table. The requested state is never applied.
type InvalidTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition %s -> %s (id %s)", e.Entity, e.From, e.To, e.ID)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// StoreUnavailableError is raised on write-path store failures. Reads never
// produce it; they degrade to a fallback value instead.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
