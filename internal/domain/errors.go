// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Error kinds surfaced by the persistence layer
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrIntegrity  = errors.New("integrity violation")

	// Collaborator errors
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError describes one violated field constraint.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Rule)
}

// ValidationError reports a missing required field, a value outside its code
// list or a value longer than its declared maximum.
type ValidationError struct {
	Entity string       `json:"entity,omitempty"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	if e.Entity == "" {
		return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError for a single field.
func Invalid(entity, field, rule, param string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Fields: []FieldError{{Field: field, Rule: rule, Param: param}},
	}
}

// IntegrityError reports a foreign key violation, a protected or no-action
// reference blocking a delete, or a cycle in the organization hierarchy.
type IntegrityError struct {
	Entity string `json:"entity"`
	Reason string `json:"reason"`
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation on %s: %s", e.Entity, e.Reason)
}

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }

// Integrity builds an IntegrityError with a formatted reason.
func Integrity(entity, format string, args ...any) *IntegrityError {
	return &IntegrityError{Entity: entity, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup by identifier with no matching row.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
