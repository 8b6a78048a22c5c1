package errs

import (
	"errors"
	"fmt"
)

// Kinds. Every error returned by the service wraps exactly one of them.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
	ErrStorage      = errors.New("storage failure")
)

var (
	ErrBookNotFound     = fmt.Errorf("book %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrNoActiveLoan     = fmt.Errorf("active loan %w", ErrNotFound)
	ErrNoPendingRequest = fmt.Errorf("pending payment request %w", ErrNotFound)
	ErrLoanNotFound     = fmt.Errorf("loan %w", ErrNotFound)

	ErrBookUnavailable = fmt.Errorf("book %w", ErrUnavailable)

	ErrDuplicateISBN    = fmt.Errorf("isbn already exists: %w", ErrConflict)
	ErrDuplicateLoan    = fmt.Errorf("book already borrowed by user: %w", ErrConflict)
	ErrBookHasOpenLoans = fmt.Errorf("book has open loans: %w", ErrConflict)

	ErrCopiesBelowAvailable = fmt.Errorf("total copies below available copies: %w", ErrInvalidInput)
	ErrCopiesBelowBorrowed  = fmt.Errorf("total copies below borrowed copies: %w", ErrInvalidInput)
	ErrOverRelease          = fmt.Errorf("all copies already available: %w", ErrInvalidInput)
	ErrWrongAction          = fmt.Errorf("action does not match operation: %w", ErrInvalidInput)
)

// Invalid classifies a validation failure.
func Invalid(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
}

type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	return ErrStorage.Error() + ": " + e.Cause.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Storage wraps an unclassified persistence error. Already classified errors pass through.
func Storage(err error) error {
	if err == nil || Classified(err) {
		return err
	}
	return &StorageError{Cause: err}
}

func Classified(err error) bool {
	for _, kind := range []error{ErrForbidden, ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnavailable, ErrStorage} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
