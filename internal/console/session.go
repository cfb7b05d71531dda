// Package console runs the calculator's interactive menu loop over a line
// source and an output writer.
package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"calc/internal/calculator"
	"calc/internal/metrics"
)

// ExitChoice ends the session.
const ExitChoice = 0

const (
	bannerText    = "=== Simple Calculator ==="
	choicePrompt  = "Choose an option: "
	invalidChoice = "Invalid option. Try again."
	farewell      = "Goodbye!"
	emptyHistory  = "No history yet."
)

// Session is one run of the menu loop. It owns the calculator, and with it
// the history, for its whole lifetime.
type Session struct {
	calc    *calculator.Calculator
	in      *Prompter
	out     io.Writer
	styles  Styles
	metrics *metrics.Metrics
	logger  *slog.Logger
	banner  bool
	items   map[int]MenuItem

	stylesSet bool
}

// Option configures a Session.
type Option func(*Session)

// WithStyles overrides the default plain styles.
func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
		s.stylesSet = true
	}
}

// WithMetrics records operations into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithLogger replaces slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithBanner toggles the title line printed when the session starts.
func WithBanner(show bool) Option {
	return func(s *Session) { s.banner = show }
}

// NewSession creates a session reading from src and writing to out.
func NewSession(src LineSource, out io.Writer, opts ...Option) *Session {
	s := &Session{
		calc:   calculator.New(),
		out:    out,
		banner: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.stylesSet {
		s.styles = PlainStyles(out)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewMetrics()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.in = NewPrompter(src, out, s.styles)
	s.in.OnParseError = func(kind string) {
		s.metrics.ObserveParseError(kind)
		s.logger.Debug("Rejected input", "kind", kind)
	}

	s.items = make(map[int]MenuItem, len(menuItems))
	for _, item := range menuItems {
		s.items[item.Key] = item
	}
	return s
}

// Calculator exposes the session's calculator and its history.
func (s *Session) Calculator() *calculator.Calculator {
	return s.calc
}

// Run displays the menu and dispatches choices until the user picks Exit or
// the input runs out. Both end the session with a nil error; only read
// failures other than end of input are returned.
func (s *Session) Run() error {
	s.logger.Info("Session started")
	if s.banner {
		fmt.Fprintln(s.out, s.styles.Banner.Render(bannerText))
	}

	for {
		s.printMenu()
		choice, err := s.in.ReadInt(choicePrompt)
		if err != nil {
			return s.finish(err)
		}

		if choice == ExitChoice {
			fmt.Fprintln(s.out, farewell)
			s.logger.Info("Session ended", "reason", "exit", "history", s.calc.History().Len())
			return nil
		}

		item, ok := s.items[choice]
		if !ok {
			s.metrics.ObserveInvalidChoice()
			s.logger.Debug("Invalid menu choice", "choice", choice)
			fmt.Fprintln(s.out, s.styles.Error.Render(invalidChoice))
		} else {
			s.logger.Debug("Menu choice", "choice", choice, "item", item.Name)
			if err := item.Action(s); err != nil {
				return s.finish(err)
			}
		}

		fmt.Fprintln(s.out)
	}
}

// finish ends the loop after a reader error. End of input is a clean exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, ErrEndOfInput) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, farewell)
		s.logger.Info("Session ended", "reason", "end of input", "history", s.calc.History().Len())
		return nil
	}
	s.logger.Error("Session aborted", "error", err)
	return err
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Heading.Render("Menu:"))
	for _, item := range menuItems {
		fmt.Fprintf(s.out, " %d) %s\n", item.Key, item.Name)
	}
}
