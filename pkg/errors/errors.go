package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input data")
	ErrInvalidDate      = errors.New("invalid date format, expected yyyy-MM-dd")
	ErrInvalidDateRange = errors.New("from date must not be after to date")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 20000")
)

// AppError carries a machine-readable code alongside the message so the
// HTTP layer can map failures without string matching.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
