package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates that caller-supplied data failed validation checks.
var ErrInvalidInput = errors.New("invalid input")

// ErrConfiguration indicates that a required price or threshold is missing or unusable.
var ErrConfiguration = errors.New("configuration error")

// ErrCalculation indicates a failed arithmetic operation (e.g. division by zero).
var ErrCalculation = errors.New("calculation error")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// InvalidInputError carries the offending field and value so that consumers
// (handlers, bindings) can localize the message via the reason key.
type InvalidInputError struct {
	Field       string
	Value       string
	ReasonKey   string
	SourceLabel string
}

func (e *InvalidInputError) Error() string {
	var b strings.Builder
	b.WriteString("invalid input")
	if e.SourceLabel != "" {
		fmt.Fprintf(&b, " [%s]", e.SourceLabel)
	}
	fmt.Fprintf(&b, ": field %q value %q (%s)", e.Field, e.Value, e.ReasonKey)
	return b.String()
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInput builds an InvalidInputError for the given field and value.
func NewInvalidInput(field, value, reasonKey string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, ReasonKey: reasonKey}
}

// ConfigurationError reports a missing or non-positive required price/threshold.
type ConfigurationError struct {
	Reason      string
	SourceLabel string
}

func (e *ConfigurationError) Error() string {
	if e.SourceLabel != "" {
		return fmt.Sprintf("configuration error [%s]: %s", e.SourceLabel, e.Reason)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// NewConfiguration builds a ConfigurationError with the given reason.
func NewConfiguration(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// CalculationError reports a failed arithmetic step. It names the operation
// rather than the operands so callers can report it without leaking values.
type CalculationError struct {
	Operation   string
	SourceLabel string
}

func (e *CalculationError) Error() string {
	if e.SourceLabel != "" {
		return fmt.Sprintf("calculation error [%s]: %s", e.SourceLabel, e.Operation)
	}
	return "calculation error: " + e.Operation
}

func (e *CalculationError) Unwrap() error { return ErrCalculation }

// NewCalculation builds a CalculationError for the named operation.
func NewCalculation(operation string) *CalculationError {
	return &CalculationError{Operation: operation}
}

// MultipleErrors aggregates several input defects into a single report.
type MultipleErrors struct {
	Errs []error
}

func (e *MultipleErrors) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *MultipleErrors) Unwrap() []error { return e.Errs }

// Collect returns nil for an empty slice, the single error for one entry,
// and a MultipleErrors otherwise.
func Collect(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &MultipleErrors{Errs: errs}
	}
}

// WithSource tags a typed error with the label of the asset that produced it.
// Unknown error types are returned unchanged.
func WithSource(err error, label string) error {
	if label == "" {
		return err
	}
	var ii *InvalidInputError
	if errors.As(err, &ii) {
		c := *ii
		c.SourceLabel = label
		return &c
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		c := *ce
		c.SourceLabel = label
		return &c
	}
	var cl *CalculationError
	if errors.As(err, &cl) {
		c := *cl
		c.SourceLabel = label
		return &c
	}
	return err
}
