package console

import (
	"io"

	"calc/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by the session. Styles only set
// colors and weight, so with the Ascii profile every rendered string is
// exactly its input.
type Styles struct {
	Banner  lipgloss.Style
	Heading lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. mode is one of the
// config color modes; "auto" lets termenv inspect w.
func NewStyles(w io.Writer, mode string) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	}

	return Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true),
		Heading: r.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true),
		Result: r.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true),
		Notice: r.NewStyle().
			Foreground(lipgloss.Color("241")), // Dim gray
	}
}

// PlainStyles renders everything without escape sequences.
func PlainStyles(w io.Writer) Styles {
	return NewStyles(w, config.ColorNever)
}
