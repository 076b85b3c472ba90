package playback

import (
	"context"
	"log/slog"
	"time"
)

// Command is a control operation executed on the runner's goroutine.
type Command func(*Controller)

// Runner drives a Controller from a single goroutine: ticks and commands are
// serialized through one select loop.
type Runner struct {
	ctrl   *Controller
	cmds   chan Command
	logger *slog.Logger

	// After schedules a tick. Defaults to time.After.
	After func(time.Duration) <-chan time.Time

	// ExitWhenDone makes Run return once the sequence is finished or unloaded.
	ExitWhenDone bool

	// HoldLast keeps a finished session alive for one more interval so the
	// last token is shown as long as the others.
	HoldLast bool
}

func NewRunner(ctrl *Controller, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		ctrl:   ctrl,
		cmds:   make(chan Command),
		logger: logger,
		After:  time.After,
	}
}

// Do hands cmd to the loop and blocks until the loop has taken it.
func (r *Runner) Do(ctx context.Context, cmd Command) error {
	select {
	case r.cmds <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run loops until ctx is canceled, or until playback completes when
// ExitWhenDone is set. The clock is stopped before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	var (
		timer   <-chan time.Time
		pending Tick
	)
	defer r.ctrl.Pause()

	for {
		if tick, ok := r.ctrl.NextTick(); ok {
			pending = tick
			timer = r.After(tick.Interval)
		}
		if r.ExitWhenDone && timer == nil && r.done() {
			return r.hold(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.cmds:
			cmd(r.ctrl)
		case <-timer:
			timer = nil
			if !r.ctrl.Advance(pending) {
				r.logger.Debug("stale tick dropped", "gen", pending.Gen)
			}
		}

		if !r.ctrl.Running() {
			timer = nil
		}
	}
}

func (r *Runner) hold(ctx context.Context) error {
	if !r.HoldLast || r.ctrl.State() != Finished {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.After(Interval(r.ctrl.Rate())):
		return nil
	}
}

func (r *Runner) done() bool {
	switch r.ctrl.State() {
	case Idle, Finished:
		return true
	}
	return false
}
