// Package errors provides standardized error types for table operations.
// TableError carries operation context for structural failures, and
// UnsupportedFormatError is returned by the loader for unknown file extensions.
package errors

import (
	"fmt"
)

// TableError represents standardized errors across table operations
type TableError struct {
	Op      string // Operation name (e.g., "Load", "NewTable")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *TableError) Error() string {
	msg := fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
	if e.Column != "" {
		msg = fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error wrapping support
func (e *TableError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *TableError) Is(target error) bool {
	if te, ok := target.(*TableError); ok {
		return e.Op == te.Op && e.Column == te.Column && e.Message == te.Message
	}
	return false
}

// UnsupportedFormatError is returned when a file extension has no reader.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format with extension: %s", e.Extension)
}

// NewColumnNotFoundError creates an error for operations on non-existent columns
func NewColumnNotFoundError(op, column string) *TableError {
	return &TableError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewDuplicateColumnError creates an error for a column name used twice in a table
func NewDuplicateColumnError(op, column string) *TableError {
	return &TableError{
		Op:      op,
		Column:  column,
		Message: "duplicate column name",
	}
}

// NewValidationError creates an error for input validation failures
func NewValidationError(op, column, message string) *TableError {
	return &TableError{
		Op:      op,
		Column:  column,
		Message: message,
	}
}

// NewIOError wraps a failure to read or parse a source file
func NewIOError(op, path string, cause error) *TableError {
	return &TableError{
		Op:      op,
		Message: fmt.Sprintf("reading %s", path),
		Cause:   cause,
	}
}

// ErrNoTables is returned when an HTML document contains no <table> element.
var ErrNoTables = &TableError{
	Op:      "Load",
	Message: "no tables found",
}
