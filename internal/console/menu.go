package console

import (
	"errors"
	"fmt"

	"calc/internal/calculator"
)

// MenuItem is one numbered entry of the menu.
type MenuItem struct {
	Key    int
	Name   string
	Action func(s *Session) error
}

// menuItems is printed in this order. Exit has no action; Run handles it.
var menuItems = []MenuItem{
	{Key: 1, Name: "Add", Action: binary(calculator.Add)},
	{Key: 2, Name: "Subtract", Action: binary(calculator.Subtract)},
	{Key: 3, Name: "Multiply", Action: binary(calculator.Multiply)},
	{Key: 4, Name: "Divide", Action: binary(calculator.Divide)},
	{Key: 5, Name: "Modulus", Action: binary(calculator.Modulus)},
	{Key: 6, Name: "Power (x^y)", Action: (*Session).power},
	{Key: 7, Name: "Square root", Action: (*Session).sqrt},
	{Key: 8, Name: "Show history", Action: (*Session).showHistory},
	{Key: ExitChoice, Name: "Exit"},
}

// MenuItems returns the menu in display order.
func MenuItems() []MenuItem {
	items := make([]MenuItem, len(menuItems))
	copy(items, menuItems)
	return items
}

func binary(op calculator.BinaryOp) func(s *Session) error {
	return func(s *Session) error {
		a, err := s.in.ReadFloat("Enter first number: ")
		if err != nil {
			return err
		}
		b, err := s.in.ReadFloat("Enter second number: ")
		if err != nil {
			return err
		}
		res, err := s.calc.Binary(op, a, b)
		s.complete(op.Label, res, err)
		return nil
	}
}

func (s *Session) power() error {
	base, err := s.in.ReadFloat("Enter base: ")
	if err != nil {
		return err
	}
	exp, err := s.in.ReadFloat("Enter exponent: ")
	if err != nil {
		return err
	}
	s.complete("Power", s.calc.Power(base, exp), nil)
	return nil
}

func (s *Session) sqrt() error {
	v, err := s.in.ReadFloat("Enter number (>= 0) for sqrt: ")
	if err != nil {
		return err
	}
	res, err := s.calc.Sqrt(v)
	s.complete("Sqrt", res, err)
	return nil
}

// complete prints the outcome of one operation. Domain errors abort only the
// current operation; the calculator has already left history untouched.
func (s *Session) complete(operation string, res calculator.Result, err error) {
	s.metrics.ObserveOperation(operation, err)
	if err != nil {
		s.logger.Info("Operation rejected", "operation", operation, "error", err)
		fmt.Fprintln(s.out, s.styles.Error.Render("Error: "+userMessage(err)))
		return
	}
	s.metrics.SetHistoryEntries(s.calc.History().Len())
	s.logger.Debug("Recorded", "record", res.Record)
	fmt.Fprintln(s.out, s.styles.Result.Render(res.Expression))
}

func (s *Session) showHistory() error {
	h := s.calc.History()
	if h.IsEmpty() {
		fmt.Fprintln(s.out, emptyHistory)
		return nil
	}
	fmt.Fprintln(s.out, s.styles.Heading.Render("History:"))
	for i, record := range h.Entries() {
		fmt.Fprintf(s.out, " %d) %s\n", i+1, record)
	}
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "Division by zero is not allowed."
	case errors.Is(err, calculator.ErrModulusByZero):
		return "Modulus by zero is not allowed."
	case errors.Is(err, calculator.ErrNegativeSqrt):
		return "Cannot compute square root of a negative number."
	default:
		return err.Error()
	}
}
