package errors

var (
	ErrInvalidRequest = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "invalid request",
		Kind:    KindValidation,
	}
	ErrInvalidGraph = &DomainError{
		Code:    "INVALID_GRAPH",
		Message: "invalid entity graph",
		Kind:    KindValidation,
	}
)
