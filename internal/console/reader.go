package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	invalidIntMessage   = "Please enter a valid integer."
	invalidFloatMessage = "Please enter a valid number (e.g., 12.5 or -3). Try again."
)

// Prompter asks for numbers until it gets one. Parse failures are reported to
// the user and never returned; only ErrEndOfInput and read errors are.
type Prompter struct {
	src    LineSource
	out    io.Writer
	styles Styles

	// OnParseError, when set, is called with "int" or "float" for every
	// rejected line.
	OnParseError func(kind string)
}

// NewPrompter returns a Prompter reading from src and prompting on out.
func NewPrompter(src LineSource, out io.Writer, styles Styles) *Prompter {
	return &Prompter{src: src, out: out, styles: styles}
}

// ReadInt prompts until the user enters a base-10, 32-bit signed integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 32)
		if err == nil {
			return int(n), nil
		}
		p.reject("int", invalidIntMessage)
	}
}

// ReadFloat prompts until the user enters a float64. NaN, Inf and exponent
// forms are accepted; literals beyond the float64 range become ±Inf.
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		p.reject("float", invalidFloatMessage)
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.src.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEndOfInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) reject(kind, message string) {
	fmt.Fprintln(p.out, p.styles.Notice.Render(message))
	if p.OnParseError != nil {
		p.OnParseError(kind)
	}
}
