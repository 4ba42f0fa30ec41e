package upload

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the service wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	// ErrConfiguration marks missing or invalid settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation marks caller-supplied data that breaks the contract.
	ErrValidation = errors.New("validation error")
	// ErrStorage marks failures reported by the object store.
	ErrStorage = errors.New("storage error")
)

func configurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// storageError keeps err reachable through errors.As.
func storageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
