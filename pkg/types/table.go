package types

import "errors"

// Table provides uniform CRUD operations for a single device type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct (*Servo or *SonarBoard).
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table.
	Fetch(filter map[string]any) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("device not found")
	ErrInvalidID     = errors.New("invalid device ID")
	ErrInvalidData   = errors.New("invalid device data")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

// Dimension validation errors shared by device specs and part parameters.
var (
	ErrDimension = errors.New("dimension must be positive")
	ErrSpacing   = errors.New("spacing too small for the holes it separates")
)
