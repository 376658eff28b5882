package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Highlighter decorates a repository name.
type Highlighter func(string) string

// Plain returns s unchanged.
func Plain(s string) string { return s }

// Bold returns a Highlighter producing "\x1b[1m" + s + "\x1b[0m".
//
// The renderer is pinned to the ANSI profile so the escape sequences do not
// depend on whether stdout is a terminal; use [Plain] to turn them off.
func Bold() Highlighter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle().Bold(true)
	return func(s string) string { return style.Render(s) }
}
