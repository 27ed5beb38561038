// Package validation checks names used in DynamoDB query requests
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	dqerrors "github.com/pay-theory/dynaquery/pkg/errors"
)

// FieldError represents a validation failure for a single name
type FieldError struct {
	Type   string
	Field  string
	Detail string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed [%s]: %q - %s", e.Type, e.Field, e.Detail)
}

// Unwrap returns the sentinel error classifying the failure
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Name limits
const (
	MaxAttributeNameLength = 255
	MinTableNameLength     = 3
	MaxTableNameLength     = 255
)

var (
	// placeholder names may only carry alphanumerics and underscores after the '#'
	placeholderSafePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	tableNamePattern       = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

// ValidateAttributeName checks that an attribute name can be referenced as #name
// in a condition expression.
func ValidateAttributeName(name string) error {
	if name == "" {
		return &FieldError{
			Type:   "EmptyAttribute",
			Field:  name,
			Detail: "attribute name cannot be empty",
			Err:    dqerrors.ErrEmptyAttributeName,
		}
	}

	if len(name) > MaxAttributeNameLength {
		return &FieldError{
			Type:   "InvalidAttribute",
			Field:  name,
			Detail: fmt.Sprintf("attribute name exceeds maximum length of %d characters", MaxAttributeNameLength),
			Err:    dqerrors.ErrInvalidAttributeName,
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return &FieldError{
				Type:   "InvalidAttribute",
				Field:  name,
				Detail: "attribute name contains control characters",
				Err:    dqerrors.ErrInvalidAttributeName,
			}
		}
	}

	if !placeholderSafePattern.MatchString(name) {
		return &FieldError{
			Type:   "InvalidAttribute",
			Field:  name,
			Detail: "attribute name may only contain letters, digits and underscores",
			Err:    dqerrors.ErrInvalidAttributeName,
		}
	}

	return nil
}

// ValidateTableName validates a DynamoDB table name
func ValidateTableName(name string) error {
	if name == "" {
		return &FieldError{
			Type:   "InvalidTableName",
			Field:  name,
			Detail: "table name is required",
			Err:    dqerrors.ErrMissingTableName,
		}
	}

	if len(name) < MinTableNameLength || len(name) > MaxTableNameLength {
		return &FieldError{
			Type:   "InvalidTableName",
			Field:  name,
			Detail: fmt.Sprintf("table name must be %d-%d characters", MinTableNameLength, MaxTableNameLength),
		}
	}

	if !tableNamePattern.MatchString(name) {
		return &FieldError{
			Type:   "InvalidTableName",
			Field:  name,
			Detail: "table name can only contain letters, numbers, dots, dashes, and underscores",
		}
	}

	return nil
}

// ValidateIndexName validates a DynamoDB index name
func ValidateIndexName(name string) error {
	if name == "" {
		return nil // Empty index name is allowed (means no index)
	}

	if len(name) < MinTableNameLength || len(name) > MaxTableNameLength {
		return &FieldError{
			Type:   "InvalidIndexName",
			Field:  name,
			Detail: fmt.Sprintf("index name must be %d-%d characters", MinTableNameLength, MaxTableNameLength),
		}
	}

	if !tableNamePattern.MatchString(name) {
		return &FieldError{
			Type:   "InvalidIndexName",
			Field:  name,
			Detail: "index name can only contain letters, numbers, dots, dashes, and underscores",
		}
	}

	return nil
}
