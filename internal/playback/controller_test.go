package playback_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rsvp/internal/playback"
	"github.com/san-kum/rsvp/internal/token"
)

// runToEnd delivers every tick the controller asks for and returns how many
// were accepted.
func runToEnd(c *playback.Controller) int {
	n := 0
	for {
		tick, ok := c.NextTick()
		if !ok {
			return n
		}
		if c.Advance(tick) {
			n++
		}
	}
}

var _ = Describe("Controller", func() {
	var c *playback.Controller

	BeforeEach(func() {
		c = playback.New(playback.DefaultRate)
	})

	Describe("without a sequence", func() {
		It("starts idle", func() {
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Position()).To(Equal(-1))
			Expect(c.Len()).To(BeZero())
			_, ok := c.Current()
			Expect(ok).To(BeFalse())
		})

		It("treats every control operation as a no-op", func() {
			c.Play()
			c.Pause()
			c.Toggle()
			c.Restart()
			c.SeekForward(3)
			c.SeekBackward(3)
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Running()).To(BeFalse())
			_, ok := c.NextTick()
			Expect(ok).To(BeFalse())
		})

		It("stays idle when the text is blank", func() {
			c.LoadText("   \n\t ")
			Expect(c.State()).To(Equal(playback.Idle))
			c.Play()
			Expect(c.Running()).To(BeFalse())
		})

		It("still accepts a rate", func() {
			c.SetRate(400)
			Expect(c.Rate()).To(Equal(400))
		})
	})

	Describe("Load", func() {
		It("enters Ready at position 0", func() {
			c.LoadText("one two three")
			Expect(c.State()).To(Equal(playback.Ready))
			Expect(c.Position()).To(Equal(0))
			Expect(c.Len()).To(Equal(3))
			Expect(c.Running()).To(BeFalse())
			tok, _ := c.Current()
			Expect(tok).To(Equal(token.Token("one")))
		})

		It("stops the previous clock so its ticks cannot touch the new session", func() {
			c.LoadText("a b c d e")
			c.Play()
			stale, ok := c.NextTick()
			Expect(ok).To(BeTrue())

			c.LoadText("x y z")
			Expect(c.Running()).To(BeFalse())
			Expect(c.Position()).To(Equal(0))
			Expect(c.Advance(stale)).To(BeFalse())
			Expect(c.Position()).To(Equal(0))
			_, ok = c.NextTick()
			Expect(ok).To(BeFalse())
		})

		It("enters Ready for a single token", func() {
			var first []playback.State
			c.AddObserver(playback.ObserverFunc(func(s playback.Snapshot) {
				first = append(first, s.State)
			}))

			c.LoadText("alone")
			Expect(c.State()).To(Equal(playback.Ready))
			Expect(c.Position()).To(Equal(0))
			Expect(first).To(Equal([]playback.State{playback.Ready}))
		})

		It("clears Finished from the previous session", func() {
			c.LoadText("a b")
			c.Play()
			runToEnd(c)
			Expect(c.State()).To(Equal(playback.Finished))

			c.LoadText("x y z")
			Expect(c.State()).To(Equal(playback.Ready))
		})

		It("returns to Idle on Unload", func() {
			c.LoadText("a b c")
			c.Play()
			c.Unload()
			Expect(c.State()).To(Equal(playback.Idle))
			Expect(c.Running()).To(BeFalse())
		})
	})

	Describe("playing to completion", func() {
		It("takes exactly N-1 ticks and finishes with the clock stopped", func() {
			c.LoadText("the quick brown fox jumps over")
			c.Play()
			Expect(c.State()).To(Equal(playback.Playing))

			Expect(runToEnd(c)).To(Equal(5))
			Expect(c.State()).To(Equal(playback.Finished))
			Expect(c.Position()).To(Equal(5))
			Expect(c.Running()).To(BeFalse())
			_, ok := c.NextTick()
			Expect(ok).To(BeFalse())
		})

		It("rewinds when played again from Finished", func() {
			c.LoadText("a b c")
			c.Play()
			runToEnd(c)
			Expect(c.State()).To(Equal(playback.Finished))

			c.Play()
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(c.Position()).To(Equal(0))
		})

		It("completes a single token without ticking", func() {
			c.LoadText("alone")
			c.Play()
			Expect(runToEnd(c)).To(BeZero())
			Expect(c.State()).To(Equal(playback.Finished))
		})

		It("ticks at the interval of the current rate", func() {
			c.LoadText("a b c")
			c.Play()
			tick, ok := c.NextTick()
			Expect(ok).To(BeTrue())
			Expect(tick.Interval).To(Equal(240 * time.Millisecond))
		})
	})

	Describe("Pause and Toggle", func() {
		BeforeEach(func() {
			c.LoadText("a b c d e f")
			c.Play()
			tick, _ := c.NextTick()
			c.Advance(tick)
		})

		It("keeps the position and rejects the outstanding tick", func() {
			pending, ok := c.NextTick()
			Expect(ok).To(BeTrue())

			c.Pause()
			Expect(c.State()).To(Equal(playback.Ready))
			Expect(c.Position()).To(Equal(1))
			Expect(c.Advance(pending)).To(BeFalse())
			Expect(c.Position()).To(Equal(1))
		})

		It("is idempotent", func() {
			c.Pause()
			c.Pause()
			Expect(c.Running()).To(BeFalse())
		})

		It("toggles between Playing and Ready", func() {
			c.Toggle()
			Expect(c.State()).To(Equal(playback.Ready))
			c.Toggle()
			Expect(c.State()).To(Equal(playback.Playing))
			Expect(c.Position()).To(Equal(1))
		})
	})

	Describe("seeking", func() {
		BeforeEach(func() {
			c.LoadText("0 1 2 3 4 5 6 7 8 9")
		})

		It("moves by n", func() {
			c.SeekForward(playback.DefaultSeek)
			Expect(c.Position()).To(Equal(5))
			c.SeekBackward(2)
			Expect(c.Position()).To(Equal(3))
		})

		It("clamps at the last token", func() {
			c.SeekForward(7)
			c.SeekForward(playback.DefaultSeek)
			Expect(c.Position()).To(Equal(9))
		})

		It("stays Ready when moved to the last token by hand", func() {
			c.SeekForward(100)
			Expect(c.Position()).To(Equal(9))
			Expect(c.State()).To(Equal(playback.Ready))
		})

		It("leaves Finished when moving away from the end", func() {
			c.Play()
			runToEnd(c)
			Expect(c.State()).To(Equal(playback.Finished))

			c.SeekBackward(1)
			Expect(c.State()).To(Equal(playback.Ready))
			c.SeekForward(1)
			Expect(c.State()).To(Equal(playback.Ready))
		})

		It("clamps at the first token", func() {
			c.SeekForward(2)
			c.SeekBackward(playback.DefaultSeek)
			Expect(c.Position()).To(Equal(0))
		})

		It("does not change the running state", func() {
			c.Play()
			c.SeekForward(3)
			Expect(c.Running()).To(BeTrue())
			c.Pause()
			c.SeekBackward(1)
			Expect(c.Running()).To(BeFalse())
		})
	})

	Describe("Restart", func() {
		It("rewinds and always pauses", func() {
			c.LoadText("a b c d")
			c.Play()
			tick, _ := c.NextTick()
			c.Advance(tick)

			c.Restart()
			Expect(c.Position()).To(Equal(0))
			Expect(c.Running()).To(BeFalse())
			Expect(c.Advance(tick)).To(BeFalse())
		})
	})

	Describe("Restart from Finished", func() {
		It("returns to Ready at the first token", func() {
			c.LoadText("a b c")
			c.Play()
			runToEnd(c)

			c.Restart()
			Expect(c.State()).To(Equal(playback.Ready))
			Expect(c.Position()).To(Equal(0))
		})
	})

	Describe("SetRate", func() {
		It("clamps to the valid range", func() {
			c.SetRate(50)
			Expect(c.Rate()).To(Equal(playback.MinRate))
			c.SetRate(5000)
			Expect(c.Rate()).To(Equal(playback.MaxRate))
		})

		It("restarts a running clock without moving the position", func() {
			c.LoadText("a b c d e f")
			c.Play()
			tick, _ := c.NextTick()
			c.Advance(tick)
			inFlight, _ := c.NextTick()

			c.SetRate(500)
			Expect(c.Position()).To(Equal(1))
			Expect(c.Running()).To(BeTrue())

			next, ok := c.NextTick()
			Expect(ok).To(BeTrue())
			Expect(next.Interval).To(Equal(120 * time.Millisecond))
			Expect(c.Advance(inFlight)).To(BeFalse())
			Expect(c.Advance(next)).To(BeTrue())
			Expect(c.Position()).To(Equal(2))
		})

		It("does not start a paused session", func() {
			c.LoadText("a b c")
			c.SetRate(300)
			Expect(c.Running()).To(BeFalse())
			_, ok := c.NextTick()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Snapshot", func() {
		It("reports derived metrics", func() {
			c.Load(token.Tokenize(strings.Repeat("word ", 11)))
			c.SetRate(300)
			c.SeekForward(5)

			s := c.Snapshot()
			Expect(s.State).To(Equal(playback.Ready))
			Expect(s.Position).To(Equal(5))
			Expect(s.Len).To(Equal(11))
			Expect(s.Progress).To(BeNumerically("~", 0.5, 1e-9))
			Expect(s.Elapsed).To(Equal(time.Second))
			Expect(s.Total).To(Equal(2200 * time.Millisecond))
			Expect(s.Remaining).To(Equal(1200 * time.Millisecond))
			Expect(s.HasFixation).To(BeTrue())
			Expect(s.Fixation).To(Equal(1))
		})

		It("reports zero progress for a single token", func() {
			c.LoadText("solo")
			Expect(c.Progress()).To(BeZero())
		})

		It("marks tokens without letters", func() {
			c.LoadText("1984")
			s := c.Snapshot()
			Expect(s.HasFixation).To(BeFalse())
			Expect(s.Token).To(Equal(token.Token("1984")))
		})
	})

	Describe("observers", func() {
		It("receive a snapshot after every change", func() {
			var seen []playback.State
			c.AddObserver(playback.ObserverFunc(func(s playback.Snapshot) {
				seen = append(seen, s.State)
			}))

			c.LoadText("a b")
			c.Play()
			runToEnd(c)

			Expect(seen).To(Equal([]playback.State{
				playback.Ready,
				playback.Playing,
				playback.Finished,
			}))
		})
	})
})
