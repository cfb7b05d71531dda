package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero is not allowed")
	// ErrModulusByZero is returned by Modulus when the divisor is zero.
	ErrModulusByZero = errors.New("modulus by zero is not allowed")
	// ErrNegativeSqrt is returned by Sqrt for negative input.
	ErrNegativeSqrt = errors.New("cannot compute square root of a negative number")
)

// DomainError reports an operation that was rejected because its operands lie
// outside the operation's domain. Nothing is recorded to history when one is
// returned.
type DomainError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is can match it.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}
