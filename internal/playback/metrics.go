package playback

import (
	"time"

	"github.com/san-kum/rsvp/internal/token"
)

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	State       State
	Token       token.Token
	Fixation    int
	HasFixation bool
	Position    int
	Len         int
	Running     bool
	Rate        int
	Progress    float64
	Elapsed     time.Duration
	Total       time.Duration
	Remaining   time.Duration
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:     c.State(),
		Position:  c.Position(),
		Len:       c.Len(),
		Running:   c.Running(),
		Rate:      c.rate,
		Progress:  c.Progress(),
		Elapsed:   c.Elapsed(),
		Total:     c.Total(),
		Remaining: c.Remaining(),
	}
	if tok, ok := c.Current(); ok {
		s.Token = tok
		s.Fixation, s.HasFixation = c.Fixation()
	}
	return s
}

// Progress is position/(len-1), or 0 for sequences shorter than two tokens.
func (c *Controller) Progress() float64 {
	if len(c.seq) < 2 {
		return 0
	}
	return float64(c.pos) / float64(c.last())
}

// Elapsed estimates the reading time up to the current position.
func (c *Controller) Elapsed() time.Duration {
	if len(c.seq) == 0 {
		return 0
	}
	return ReadingTime(c.pos, c.rate)
}

// Total estimates the reading time of the whole sequence.
func (c *Controller) Total() time.Duration { return ReadingTime(len(c.seq), c.rate) }

// Remaining is Total minus Elapsed.
func (c *Controller) Remaining() time.Duration { return c.Total() - c.Elapsed() }

// ReadingTime is the time needed to show n tokens at wpm.
func ReadingTime(n, wpm int) time.Duration {
	if wpm <= 0 || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Minute / time.Duration(wpm)
}
