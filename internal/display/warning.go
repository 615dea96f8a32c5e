// Package display renders user-facing output: warnings, the results
// summary and dimension score bars. Everything writes to a caller-chosen
// io.Writer so command tests can capture output.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display shows a formatted warning, in yellow when the writer is a
// terminal.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	useColor := IsTerminal(out)
	if useColor {
		b.WriteString("\x1b[33m")
	}

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}
	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if useColor {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// IsTerminal reports whether the writer is an interactive terminal,
// which gates color output.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
