// Package calculator implements the arithmetic behind the console menu: the
// operations, the number formatter and the history of successful results.
package calculator

import "fmt"

// Result is a successful calculation.
type Result struct {
	Value float64
	// Expression is the display form, e.g. "3 + 4 = 7".
	Expression string
	// Record is the history form, e.g. "Addition: 3 + 4 = 7".
	Record string
}

// Calculator performs operations and records every successful one in its
// history. Failed operations leave the history untouched.
type Calculator struct {
	history *History
}

// New returns a calculator with an empty history.
func New() *Calculator {
	return &Calculator{history: NewHistory()}
}

// History returns the calculator's history store.
func (c *Calculator) History() *History {
	return c.history
}

// Binary applies op to a and b.
func (c *Calculator) Binary(op BinaryOp, a, b float64) (Result, error) {
	value, err := op.Apply(a, b)
	if err != nil {
		return Result{}, err
	}
	expr := fmt.Sprintf("%s %s %s = %s", FormatNumber(a), op.Symbol, FormatNumber(b), FormatNumber(value))
	return c.record(op.Label, value, expr), nil
}

// Power raises base to exp. It never fails; NaN and infinite results are
// recorded as they are.
func (c *Calculator) Power(base, exp float64) Result {
	value := Power(base, exp)
	expr := fmt.Sprintf("%s ^ %s = %s", FormatNumber(base), FormatNumber(exp), FormatNumber(value))
	return c.record("Power", value, expr)
}

// Sqrt computes the square root of v.
func (c *Calculator) Sqrt(v float64) (Result, error) {
	value, err := Sqrt(v)
	if err != nil {
		return Result{}, err
	}
	expr := fmt.Sprintf("sqrt(%s) = %s", FormatNumber(v), FormatNumber(value))
	return c.record("Sqrt", value, expr), nil
}

func (c *Calculator) record(label string, value float64, expr string) Result {
	res := Result{
		Value:      value,
		Expression: expr,
		Record:     label + ": " + expr,
	}
	c.history.Append(res.Record)
	return res
}
