package domain

import "errors"

const (
	MsgMissingFields     = "Required fields are missing."
	MsgEmployeeNotFound  = "Employee not found."
	MsgInvalidBody       = "Invalid request body"
	MsgStoreNotAvailable = "database is not available"
)

type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
	KindStore        ErrorKind = "store"
)

// Error carries the outcome class of a failed operation. Store errors keep
// the engine's message as is.
type Error struct {
	Kind            ErrorKind
	Message         string
	Err             error
	UniqueViolation bool
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewInvalidInputError(message string, cause error) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: cause}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewStoreError(err error) *Error {
	return &Error{Kind: KindStore, Err: err}
}

// KindOf reports the kind of err. Errors that were never classified count as
// store errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindStore
}

func IsUniqueViolation(err error) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.UniqueViolation
}
