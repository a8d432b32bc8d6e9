package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by the payment engine and its collaborators
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidState       = errors.New("invalid state")
	ErrForbidden          = errors.New("forbidden")
	ErrReferenceExhausted = errors.New("reference space exhausted")
	ErrStorageFailure     = errors.New("storage failure")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConfiguration      = errors.New("configuration error")
	ErrUnauthorized       = errors.New("unauthorized")

	// ErrReferenceTaken is returned by the store when a reference collides.
	// It never leaves the payments usecase.
	ErrReferenceTaken = errors.New("reference already taken")
)

// NotFound wraps ErrNotFound with a description
func NotFound(format string, args ...interface{}) error {
	return wrap(ErrNotFound, format, args...)
}

// InvalidInput wraps ErrInvalidInput with a description
func InvalidInput(format string, args ...interface{}) error {
	return wrap(ErrInvalidInput, format, args...)
}

// InvalidAmount wraps ErrInvalidAmount with a description
func InvalidAmount(format string, args ...interface{}) error {
	return wrap(ErrInvalidAmount, format, args...)
}

// Forbidden wraps ErrForbidden with a description
func Forbidden(format string, args ...interface{}) error {
	return wrap(ErrForbidden, format, args...)
}

// Unauthorized wraps ErrUnauthorized with a description
func Unauthorized(format string, args ...interface{}) error {
	return wrap(ErrUnauthorized, format, args...)
}

// Configuration wraps ErrConfiguration with a description
func Configuration(format string, args ...interface{}) error {
	return wrap(ErrConfiguration, format, args...)
}

// Storage marks err as a storage failure unless it already carries a kind
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

var kinds = []error{
	ErrNotFound,
	ErrInvalidAmount,
	ErrInvalidState,
	ErrForbidden,
	ErrReferenceExhausted,
	ErrStorageFailure,
	ErrInvalidInput,
	ErrConfiguration,
	ErrUnauthorized,
	ErrReferenceTaken,
}

// Kind returns the sentinel kind carried by err, or nil
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// HTTPStatus maps an error kind to the status code handlers reply with
func HTTPStatus(err error) int {
	switch Kind(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidAmount, ErrInvalidInput:
		return http.StatusBadRequest
	case ErrInvalidState:
		return http.StatusConflict
	case ErrForbidden:
		return http.StatusForbidden
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrReferenceExhausted, ErrStorageFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
