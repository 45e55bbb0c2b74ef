package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotFound        = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindOutOfRange      ErrorKind = "out_of_range"
	KindNotFound        ErrorKind = "not_found"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	// Err already ends with the matching sentinel text.
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on concrete types.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidArgument reports a rejected input with a formatted reason.
func InvalidArgument(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument),
	}
}

func outOfRange(op string, index, count int) error {
	return &OpError{
		Op:   op,
		Kind: KindOutOfRange,
		Err:  fmt.Errorf("index %d not in [0, %d): %w", index, count, ErrOutOfRange),
	}
}

// NotFound reports a missing named resource, e.g. an unknown train.
func NotFound(op, name string) error {
	return &OpError{
		Op:   op,
		Kind: KindNotFound,
		Err:  fmt.Errorf("%q: %w", name, ErrNotFound),
	}
}
