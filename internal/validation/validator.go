// Package validation provides input validation utilities for table operations.
// Validators check structural invariants such as column existence, unique
// column names and a shared row count before a table is assembled.
package validation

import (
	"fmt"

	"github.com/paveg/tabclean/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ColumnProvider interface for types that provide column information
type ColumnProvider interface {
	HasColumn(name string) bool
	Columns() []string
	Len() int
	Width() int
}

// ColumnValidator validates column existence
type ColumnValidator struct {
	t       ColumnProvider
	columns []string
	op      string
}

// NewColumnValidator creates a validator for column operations
func NewColumnValidator(t ColumnProvider, op string, columns ...string) *ColumnValidator {
	return &ColumnValidator{
		t:       t,
		columns: columns,
		op:      op,
	}
}

// Validate checks if all columns exist in the table
func (v *ColumnValidator) Validate() error {
	for _, column := range v.columns {
		if !v.t.HasColumn(column) {
			return errors.NewColumnNotFoundError(v.op, column)
		}
	}
	return nil
}

// UniqueNamesValidator validates that no column name appears twice
type UniqueNamesValidator struct {
	names []string
	op    string
}

// NewUniqueNamesValidator creates a validator for column name uniqueness
func NewUniqueNamesValidator(names []string, op string) *UniqueNamesValidator {
	return &UniqueNamesValidator{
		names: names,
		op:    op,
	}
}

// Validate reports the first repeated name
func (v *UniqueNamesValidator) Validate() error {
	seen := make(map[string]struct{}, len(v.names))
	for _, name := range v.names {
		if _, ok := seen[name]; ok {
			return errors.NewDuplicateColumnError(v.op, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// LengthValidator validates array length consistency
type LengthValidator struct {
	expected int
	actual   int
	op       string
	column   string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op, column string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		column:   column,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		message := fmt.Sprintf("expected length %d, got %d", v.expected, v.actual)
		return errors.NewValidationError(v.op, v.column, message)
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Add appends a validator to the chain
func (v *CompoundValidator) Add(validator Validator) {
	v.validators = append(v.validators, validator)
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateColumns is a convenience function for column validation
func ValidateColumns(t ColumnProvider, op string, columns ...string) error {
	return NewColumnValidator(t, op, columns...).Validate()
}
