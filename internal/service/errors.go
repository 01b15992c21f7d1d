package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailTaken         = errors.New("email already exists")
	ErrEmailNotFound      = errors.New("email not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrParcelNotFound     = errors.New("parcel not found")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrSupportNotFound    = errors.New("support request not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTimeRange   = errors.New("invalid time range: from must be <= to")
)

// ValidationError reports bad input; handlers answer 400 with its message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func parcelNotFound(trackingID string) error {
	return fmt.Errorf("%w with tracking ID: %s", ErrParcelNotFound, trackingID)
}
