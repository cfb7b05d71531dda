package main

import (
	"fmt"
	"strings"

	"calc/internal/config"
	"calc/internal/console"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"
)

const guideIntro = `# calc

Pick an operation by its number, then answer the prompts. Every successful
result is printed and appended to the session history; option **8** lists it.

## Menu
`

const guideRules = `
## Input

- Menu choices are whole numbers. Anything else is rejected and asked again.
- Operands accept decimals, exponents (` + "`1e3`" + `), ` + "`NaN`" + ` and ` + "`Inf`" + `.
- Closing the input (Ctrl-D) leaves the calculator like option 0.

## Errors

- Division and modulus by zero are refused and not recorded.
- The square root of a negative number is refused and not recorded.
- Power never fails: undefined results print as ` + "`NaN`" + `.

## Number format

Whole numbers print without a decimal point (` + "`7`" + `, not ` + "`7.0`" + `).
Other values use the shortest form that reads back to the same number.
Modulus keeps the sign of the dividend: ` + "`-7 % 3 = -1`" + `.
`

func init() {
	guideCmd := &cobra.Command{
		Use:   "guide",
		Short: "Show a reference of the calculator menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newGuideRenderer(config.Current().Color)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}

			md := guideMarkdown()
			out, err := renderer.Render(md)
			if err != nil {
				// Fallback to plain text
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	rootCmd.AddCommand(guideCmd)
}

func newGuideRenderer(colorMode string) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	switch colorMode {
	case config.ColorNever:
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	case config.ColorAlways:
		style = glamour.WithStandardStyle(styles.DarkStyle)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
}

func guideMarkdown() string {
	var b strings.Builder
	b.WriteString(guideIntro)
	b.WriteString("\n| Option | Operation |\n|---|---|\n")
	for _, item := range console.MenuItems() {
		fmt.Fprintf(&b, "| %d | %s |\n", item.Key, item.Name)
	}
	b.WriteString(guideRules)
	return b.String()
}
