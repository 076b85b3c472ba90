// Package playback schedules a token sequence for rapid serial presentation.
//
// The package is built from three pieces:
//
//   - [Clock]: a generation-counted ticker description. It never owns a
//     goroutine; a driver asks it which [Tick] to schedule next and hands the
//     tick back when the wait elapses.
//   - [Controller]: the state machine (Idle, Ready, Playing, Finished) that
//     owns position, running flag and rate.
//   - [Runner]: a headless driver that runs a controller on one goroutine.
//
// # Example
//
//	ctrl := playback.New(playback.DefaultRate)
//	ctrl.LoadText("the quick brown fox")
//	ctrl.Play()
//	for {
//		tick, ok := ctrl.NextTick()
//		if !ok {
//			break
//		}
//		time.Sleep(tick.Interval)
//		ctrl.Advance(tick)
//	}
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. Every operation, ticks included,
// must be delivered from the same loop. Stopping the clock bumps its
// generation, so a tick scheduled before a pause, restart or reload is
// rejected when it arrives.
package playback
