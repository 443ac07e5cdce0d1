package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeTransport      ErrorType = "TRANSPORT"
	ErrTypeUpstreamStatus ErrorType = "UPSTREAM_STATUS"
	ErrTypeMalformedInput ErrorType = "MALFORMED_INPUT"
	ErrTypeInvalidConfig  ErrorType = "INVALID_CONFIG"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Transport(message string, err error) *DomainError {
	return New(ErrTypeTransport, message, err)
}

func UpstreamStatus(statusCode int) *DomainError {
	return New(ErrTypeUpstreamStatus, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
}

func MalformedInput(message string, err error) *DomainError {
	return New(ErrTypeMalformedInput, message, err)
}

func InvalidConfig(message string, err error) *DomainError {
	return New(ErrTypeInvalidConfig, message, err)
}

// TypeOf returns the type of the outermost DomainError in err's chain, or ""
// when there is none.
func TypeOf(err error) ErrorType {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

func Is(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}
