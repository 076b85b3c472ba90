package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/rsvp/internal/orp"
	"github.com/san-kum/rsvp/internal/token"
)

// RenderWord draws tok so that its fixation character lands on column.
// Tokens without letters are drawn plain, starting at column.
func RenderWord(tok token.Token, column int, s Styles) string {
	before, pivot, after, ok := orp.Split(tok)
	if !ok {
		return strings.Repeat(" ", column) + s.Before.Render(before)
	}
	pad := max(0, column-lipgloss.Width(before))
	return strings.Repeat(" ", pad) + s.Before.Render(before) + s.Pivot.Render(pivot) + s.After.Render(after)
}

// Marker draws the fixation guide that sits above and below the word.
func Marker(column int, s Styles) string {
	return strings.Repeat(" ", column) + s.Marker.Render("│")
}
