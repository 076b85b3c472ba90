package playback

import (
	"time"

	"github.com/san-kum/rsvp/internal/orp"
	"github.com/san-kum/rsvp/internal/token"
)

// Frame is one token placed on the playback timeline.
type Frame struct {
	Index       int
	Token       token.Token
	Fixation    int
	HasFixation bool
	Start       time.Duration
	Duration    time.Duration
}

// Timeline lays seq out at a fixed rate, the way an uninterrupted playback
// from the first token would show it.
func Timeline(seq token.Sequence, wpm int) []Frame {
	wpm = ClampRate(wpm)
	step := Interval(wpm)
	frames := make([]Frame, len(seq))
	for i, tok := range seq {
		idx, ok := orp.FixationIndex(tok)
		frames[i] = Frame{
			Index:       i,
			Token:       tok,
			Fixation:    idx,
			HasFixation: ok,
			Start:       time.Duration(i) * step,
			Duration:    step,
		}
	}
	return frames
}
