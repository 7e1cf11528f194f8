package parser

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFormat = errors.New("Invalid data format. Please provide data in CSV or JSON format.")

// ParseError reports malformed CSV or JSON input.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse input data. %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError reports a record with a missing or empty required field. Row is
// 1-indexed. An empty message takes priority over the other fields.
type FieldError struct {
	Row          int
	EmptyMessage bool
	Missing      []string
}

func (e *FieldError) Error() string {
	if e.EmptyMessage {
		return fmt.Sprintf("'message' field cannot be empty in row %d.", e.Row)
	}
	return fmt.Sprintf("Missing required field(s): %s in row %d.", strings.Join(e.Missing, ", "), e.Row)
}

// FormatErrors renders errors as ERROR-prefixed lines in the order given.
func FormatErrors(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "ERROR: "+err.Error())
	}
	return strings.Join(lines, "\n")
}
