package api

import (
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/adapters/repository"
	service "github.com/mergington/activities/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
)

// Error records the handler operation that failed and the kind of failure.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind != nil && e.Err != nil:
		return e.Op + ": " + e.Kind.Error() + ": " + e.Err.Error()
	case e.Kind != nil:
		return e.Op + ": " + e.Kind.Error()
	case e.Err != nil:
		return e.Op + ": " + e.Err.Error()
	default:
		return e.Op
	}
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Wrap annotates err with op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// WrapKind annotates err with op and kind.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// NewKind builds an error of kind for op with no underlying cause.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// Client-facing detail strings.
const (
	detailNotFound        = "Activity not found"
	detailAlreadySignedUp = "Student is already signed up for this activity"
	detailNotSignedUp     = "Student is not signed up for this activity"
	detailActivityFull    = "Activity is full"
)

// statusFor maps an error onto an HTTP status and a detail message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, detailNotFound
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return http.StatusBadRequest, detailAlreadySignedUp
	case errors.Is(err, repository.ErrNotSignedUp):
		return http.StatusBadRequest, detailNotSignedUp
	case errors.Is(err, repository.ErrActivityFull):
		return http.StatusBadRequest, detailActivityFull
	case errors.Is(err, ErrValidation):
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Err != nil {
			return http.StatusUnprocessableEntity, apiErr.Err.Error()
		}
		return http.StatusUnprocessableEntity, ErrValidation.Error()
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, http.StatusText(http.StatusBadRequest)
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
