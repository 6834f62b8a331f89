// Package errors defines the domain error taxonomy shared by services and
// handlers.
package errors

import "fmt"

// Kind classifies a DomainError for transport mapping.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
)

// DomainError is an expected, caller-visible failure.
type DomainError struct {
	Code    string
	Message string
	Kind    Kind
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so wrapped or
// re-described errors still satisfy errors.Is against the sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NotFound builds a not-found error for code with a formatted message.
func NotFound(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...), Kind: KindNotFound}
}

// Validation builds a validation error for code with a formatted message.
func Validation(code, format string, args ...interface{}) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...), Kind: KindValidation}
}
