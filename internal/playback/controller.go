package playback

import (
	"github.com/san-kum/rsvp/internal/orp"
	"github.com/san-kum/rsvp/internal/token"
)

// DefaultSeek is the number of tokens skipped by a seek without an explicit count.
const DefaultSeek = 5

type State int

const (
	Idle State = iota
	Ready
	Playing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Observer is notified after every operation that may have changed the state.
type Observer interface {
	OnChange(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnChange(s Snapshot) { f(s) }

// Controller owns the playback state of one reading session. Every operation
// is total: out-of-range input is clamped and operations without a loaded
// sequence do nothing.
type Controller struct {
	seq       token.Sequence
	pos       int
	rate      int
	clock     Clock
	finished  bool
	observers []Observer
}

func New(rate int) *Controller {
	return &Controller{rate: ClampRate(rate)}
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

// Load replaces the current sequence and resets to the first token, paused.
// Loading an empty sequence leaves the controller idle.
func (c *Controller) Load(seq token.Sequence) {
	c.clock.Stop()
	c.pos = 0
	c.seq = nil
	c.finished = false
	if len(seq) > 0 {
		c.seq = seq
	}
	c.notify()
}

// LoadText tokenizes text and loads the result.
func (c *Controller) LoadText(text string) { c.Load(token.Tokenize(text)) }

// Unload discards the sequence and returns to Idle.
func (c *Controller) Unload() { c.Load(nil) }

// Play starts the clock. Playing from the last token rewinds to the first.
// A single token has nothing to advance to and finishes at once.
func (c *Controller) Play() {
	if len(c.seq) == 0 || c.clock.Running() {
		return
	}
	if c.pos == c.last() {
		c.pos = 0
	}
	c.finished = c.pos == c.last()
	if !c.finished {
		c.clock.Start(Interval(c.rate))
	}
	c.notify()
}

func (c *Controller) Pause() {
	if !c.clock.Running() {
		return
	}
	c.clock.Stop()
	c.notify()
}

func (c *Controller) Toggle() {
	if c.clock.Running() {
		c.Pause()
		return
	}
	c.Play()
}

// Restart rewinds to the first token and always pauses.
func (c *Controller) Restart() {
	if len(c.seq) == 0 {
		return
	}
	c.clock.Stop()
	c.pos = 0
	c.finished = false
	c.notify()
}

func (c *Controller) SeekForward(n int)  { c.seek(c.pos + n) }
func (c *Controller) SeekBackward(n int) { c.seek(c.pos - n) }

func (c *Controller) seek(pos int) {
	if len(c.seq) == 0 {
		return
	}
	c.pos = max(0, min(pos, c.last()))
	c.finished = false
	c.notify()
}

// SetRate clamps wpm into [MinRate, MaxRate]. A running clock is restarted so
// the new interval applies from the next cycle.
func (c *Controller) SetRate(wpm int) {
	c.rate = ClampRate(wpm)
	if c.clock.Running() {
		c.clock.Start(Interval(c.rate))
	}
	c.notify()
}

// Advance applies a clock tick. Ticks from a stopped or replaced cycle are
// ignored and false is returned.
func (c *Controller) Advance(t Tick) bool {
	if !c.clock.Fire(t) {
		return false
	}
	c.pos++
	if c.pos >= c.last() {
		c.pos = c.last()
		c.clock.Stop()
		c.finished = true
	}
	c.notify()
	return true
}

// NextTick returns the tick a driver has to schedule, if any.
func (c *Controller) NextTick() (Tick, bool) { return c.clock.Next() }

// State reports Finished only after playback ran to the last token. Seeking
// there by hand leaves the controller Ready.
func (c *Controller) State() State {
	switch {
	case len(c.seq) == 0:
		return Idle
	case c.clock.Running():
		return Playing
	case c.finished:
		return Finished
	}
	return Ready
}

// Position is the current token index, or -1 when nothing is loaded.
func (c *Controller) Position() int {
	if len(c.seq) == 0 {
		return -1
	}
	return c.pos
}

func (c *Controller) Len() int      { return len(c.seq) }
func (c *Controller) Running() bool { return c.clock.Running() }
func (c *Controller) Rate() int     { return c.rate }

func (c *Controller) Current() (token.Token, bool) { return c.seq.At(c.pos) }

// Fixation returns the fixation index of the current token.
func (c *Controller) Fixation() (int, bool) {
	tok, ok := c.Current()
	if !ok {
		return 0, false
	}
	return orp.FixationIndex(tok)
}

func (c *Controller) last() int { return len(c.seq) - 1 }

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	s := c.Snapshot()
	for _, o := range c.observers {
		o.OnChange(s)
	}
}
