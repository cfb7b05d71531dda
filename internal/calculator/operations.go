package calculator

import "math"

// BinaryOp is one of the two-operand menu operations.
type BinaryOp struct {
	// Label names the operation in history records, e.g. "Addition".
	Label string
	// Symbol is the infix operator shown between the operands.
	Symbol string

	apply func(a, b float64) (float64, error)
}

// Apply computes a <op> b.
func (o BinaryOp) Apply(a, b float64) (float64, error) {
	result, err := o.apply(a, b)
	if err != nil {
		return 0, &DomainError{Operation: o.Label, Err: err}
	}
	return result, nil
}

var (
	// Add sums its operands.
	Add = BinaryOp{Label: "Addition", Symbol: "+", apply: func(a, b float64) (float64, error) {
		return a + b, nil
	}}
	// Subtract takes the second operand from the first.
	Subtract = BinaryOp{Label: "Subtraction", Symbol: "-", apply: func(a, b float64) (float64, error) {
		return a - b, nil
	}}
	// Multiply returns the product of its operands.
	Multiply = BinaryOp{Label: "Multiplication", Symbol: "*", apply: func(a, b float64) (float64, error) {
		return a * b, nil
	}}
	// Divide rejects an exactly zero divisor, including -0.
	Divide = BinaryOp{Label: "Division", Symbol: "/", apply: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}}
	// Modulus takes the sign of the dividend: -7 % 3 == -1.
	Modulus = BinaryOp{Label: "Modulus", Symbol: "%", apply: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrModulusByZero
		}
		return math.Mod(a, b), nil
	}}
)

// Power returns base**exp. Undefined cases such as a negative base with a
// fractional exponent yield NaN rather than an error.
func Power(base, exp float64) float64 {
	return math.Pow(base, exp)
}

// Sqrt returns the non-negative square root of v.
func Sqrt(v float64) (float64, error) {
	if v < 0 {
		return 0, &DomainError{Operation: "Sqrt", Err: ErrNegativeSqrt}
	}
	return math.Sqrt(v), nil
}
