package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur during a simulation run.
var (
	// ErrEmptyDataset indicates that a simulation was invoked on a
	// preference table with no rows. The simulation does not start.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNoEligibleParty indicates that a bottom-party lookup found no
	// party with strictly positive votes. This is unreachable while the
	// simulation loop guard holds; it exists so that future changes to
	// the termination bound surface as a reported error instead of a
	// silent fault.
	ErrNoEligibleParty = errors.New("no party with positive votes")

	// ErrDateNotFound indicates that a requested survey date column is
	// absent from a source table.
	ErrDateNotFound = errors.New("survey date not found")
)

// UnknownPartyError indicates a bloc lookup for a party code outside the
// enumerated set. When a known code is within a small edit distance of
// the requested one, Suggestion carries the closest match.
type UnknownPartyError struct {
	// Party is the code that failed the lookup.
	Party string

	// Suggestion is the closest known party code, or empty when nothing
	// is plausibly close.
	Suggestion string
}

// Error implements the error interface for UnknownPartyError.
func (e *UnknownPartyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown party %q (did you mean %q?)", e.Party, e.Suggestion)
	}
	return fmt.Sprintf("unknown party %q", e.Party)
}

// ValidationError represents an error that occurred while validating
// survey input during table construction. It can contain multiple
// validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
