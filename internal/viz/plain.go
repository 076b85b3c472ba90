package viz

import (
	"fmt"
	"io"

	"github.com/san-kum/rsvp/internal/playback"
)

// Printer is a playback.Observer that writes one line per shown token, with
// the fixation characters of consecutive lines aligned.
type Printer struct {
	w      io.Writer
	styles Styles
	last   int
	err    error
}

func NewPrinter(w io.Writer, theme Theme) *Printer {
	return &Printer{w: w, styles: NewStyles(theme), last: -1}
}

func (p *Printer) OnChange(s playback.Snapshot) {
	if p.err != nil || s.Len == 0 || s.Position == p.last {
		return
	}
	p.last = s.Position
	_, p.err = fmt.Fprintln(p.w, RenderWord(s.Token, pivotColumn, p.styles))
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }
