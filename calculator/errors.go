package calculator

import (
	"errors"
	"strings"
)

var (
	// ErrHipRequired is returned for female body-fat input without a positive hip.
	ErrHipRequired = errors.New("hip measurement is required for females")

	// ErrInvalidMeasurement means the circumferences are individually in range
	// but the Navy formula is undefined for their combination.
	ErrInvalidMeasurement = errors.New("invalid measurement combination")
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
	Message    string `json:"message"`
}

// ValidationError lists every field of an input record that failed its
// declared range or enumeration.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field is among the failures.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// DomainError is returned when input passes field validation but the
// requested formula cannot produce a number for it.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *DomainError) Unwrap() error { return e.Err }
