package apperror

import "net/http"

// Kind classifies an application error independently of the HTTP code it
// eventually maps to. Several kinds share code 400 on purpose: the portal
// treats every business-rule violation as a client input problem.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindNotFound      Kind = "NOT_FOUND"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindForbidden     Kind = "FORBIDDEN"
	KindRefIntegrity  Kind = "REFERENTIAL_INTEGRITY"
	KindStateConflict Kind = "STATE_CONFLICT"
	KindDuplicate     Kind = "DUPLICATE"
	KindInternal      Kind = "INTERNAL"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// RefIntegrity reports a referenced entity that is missing or soft-deleted.
// Maps to 400: the client passed a bad foreign key.
func RefIntegrity(message string) *AppError {
	return New(http.StatusBadRequest, KindRefIntegrity, message, nil)
}

// StateConflict reports a referenced entity whose status is incompatible
// with the operation (disabled company, closed job).
func StateConflict(message string) *AppError {
	return New(http.StatusBadRequest, KindStateConflict, message, nil)
}

// Duplicate reports a uniqueness-rule violation. Mapped to 400, not 409,
// for consistency with the other rule violations.
func Duplicate(message string) *AppError {
	return New(http.StatusBadRequest, KindDuplicate, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
