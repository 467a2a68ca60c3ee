package domain

// ErrorKind classifies domain errors so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
	KindEmptyCollection
)

type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func newError(kind ErrorKind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

func NewValidationError(field, message string) *Error {
	return newError(KindValidation, field, message)
}

func NewNotFoundError(message string) *Error {
	return newError(KindNotFound, "", message)
}

func NewConflictError(field, message string) *Error {
	return newError(KindConflict, field, message)
}
