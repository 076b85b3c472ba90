package playback

import "time"

const (
	MinRate     = 100
	MaxRate     = 1000
	DefaultRate = 250
)

// Interval converts a words-per-minute rate to the display time of one token.
func Interval(wpm int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	return time.Minute / time.Duration(wpm)
}

// ClampRate forces wpm into [MinRate, MaxRate].
func ClampRate(wpm int) int {
	if wpm < MinRate {
		return MinRate
	}
	if wpm > MaxRate {
		return MaxRate
	}
	return wpm
}

// Tick is one scheduled advance. Gen ties it to the clock cycle that issued it.
type Tick struct {
	Gen      uint64
	Interval time.Duration
}

// Clock tracks the single active timer of a controller. Only ticks carrying
// the current generation are accepted.
type Clock struct {
	gen      uint64
	running  bool
	armed    bool
	interval time.Duration
}

// Start stops any previous cycle and arms a new one at interval.
func (c *Clock) Start(interval time.Duration) {
	c.Stop()
	c.gen++
	c.running = true
	c.armed = true
	c.interval = interval
}

// Stop invalidates every outstanding tick. Safe to call when not running.
func (c *Clock) Stop() {
	if c.running {
		c.gen++
	}
	c.running = false
	c.armed = false
}

// Fire reports whether t belongs to the current cycle. An accepted tick
// re-arms the clock for the next cycle.
func (c *Clock) Fire(t Tick) bool {
	if !c.running || t.Gen != c.gen {
		return false
	}
	c.armed = true
	return true
}

// Next returns the tick the driver must schedule, at most once per arming.
func (c *Clock) Next() (Tick, bool) {
	if !c.armed {
		return Tick{}, false
	}
	c.armed = false
	return Tick{Gen: c.gen, Interval: c.interval}, true
}

func (c *Clock) Running() bool      { return c.running }
func (c *Clock) Generation() uint64 { return c.gen }
