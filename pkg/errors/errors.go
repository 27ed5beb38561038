// Package errors defines error types and utilities for dynaquery
package errors

import (
	"errors"
	"fmt"
)

// Errors reported while building a query request
var (
	// ErrInvalidOperator is returned when a condition uses an operator token
	// outside the supported set, or one not allowed in its expression slot
	ErrInvalidOperator = errors.New("invalid query operator")

	// ErrEmptyAttributeName is returned when a condition names no attribute
	ErrEmptyAttributeName = errors.New("empty attribute name")

	// ErrInvalidAttributeName is returned when an attribute name cannot be
	// expressed as a #name placeholder
	ErrInvalidAttributeName = errors.New("invalid attribute name")

	// ErrMissingTableName is returned when a request without a table is handed off
	ErrMissingTableName = errors.New("missing table name")

	// ErrMissingKeyCondition is returned when a request without a key condition is handed off
	ErrMissingKeyCondition = errors.New("missing key condition")

	// ErrUnsupportedType is returned when a literal cannot be converted to an attribute value
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidDefinition is returned when a query definition cannot be decoded
	ErrInvalidDefinition = errors.New("invalid query definition")
)

// BuilderError represents a detailed error with context
type BuilderError struct {
	Op    string // Operation that failed
	Table string // Target table, may be empty
	Err   error  // Underlying error
}

// Error implements the error interface
func (e *BuilderError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("dynaquery: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dynaquery: %s on %s failed: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error
func (e *BuilderError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *BuilderError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new BuilderError
func NewError(op, table string, err error) *BuilderError {
	return &BuilderError{
		Op:    op,
		Table: table,
		Err:   err,
	}
}

// IsInvalidOperator checks if an error was caused by an unsupported operator
func IsInvalidOperator(err error) bool {
	return errors.Is(err, ErrInvalidOperator)
}

// IsInvalidAttribute checks if an error was caused by an unusable attribute name
func IsInvalidAttribute(err error) bool {
	return errors.Is(err, ErrEmptyAttributeName) || errors.Is(err, ErrInvalidAttributeName)
}
