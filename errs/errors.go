// Package errs defines the sentinel errors shared by all sdsl packages.
//
// Every error returned by the library either is one of these sentinels or wraps
// one, so callers classify failures with errors.Is:
//
//	if errors.Is(err, errs.ErrIndexOutOfRange) {
//	    // bad element index
//	}
//
// Contextual wrapping is done with github.com/cockroachdb/errors, which keeps
// the standard library errors.Is/errors.As working on the wrapped chain.
package errs

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrIndexOutOfRange is returned when an element or bit index is outside the structure.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrWidthViolation is returned for an invalid integer width, a width change on a
	// fixed-width vector, or a width mismatch between bitwise operands.
	ErrWidthViolation = errors.New("width violation")

	// ErrSizeMismatch is returned when bitwise operands have different bit sizes.
	ErrSizeMismatch = errors.New("bit size mismatch")

	// ErrMonotonicityViolation is returned when a delta-mode vector is built from a
	// sequence that is not non-decreasing.
	ErrMonotonicityViolation = errors.New("sequence is not non-decreasing")

	// ErrValueOutOfRange is returned when a value cannot be represented by a coder,
	// e.g. math.MaxUint64 after the +1 shift required by Elias and Fibonacci codes.
	ErrValueOutOfRange = errors.New("value out of range for coder")

	// ErrInvalidOption is returned when a construction or storage option is invalid.
	ErrInvalidOption = errors.New("invalid option")

	// ErrIO is matched by every file open, read, write or rename failure.
	ErrIO = errors.New("i/o error")

	// ErrCorruptFormat is returned when serialized data is inconsistent.
	ErrCorruptFormat = errors.New("corrupt format")

	// ErrKindMismatch is returned when a file holds a different structure kind than
	// the one requested. It also matches ErrCorruptFormat.
	ErrKindMismatch = errors.Wrap(ErrCorruptFormat, "structure kind mismatch")

	// ErrChecksumMismatch is returned when a payload checksum does not verify.
	// It also matches ErrCorruptFormat.
	ErrChecksumMismatch = errors.Wrap(ErrCorruptFormat, "payload checksum mismatch")
)

// IOError records a failed file operation.
//
// It matches both ErrIO and the underlying operating system error:
//
//	errors.Is(err, errs.ErrIO)        // true
//	errors.Is(err, fs.ErrNotExist)    // true when the file is missing
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError wraps err as an IOError. It returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap exposes both ErrIO and the wrapped error to errors.Is.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
