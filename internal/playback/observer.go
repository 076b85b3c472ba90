package playback

import "log/slog"

// LogObserver logs state transitions and rate changes at debug level.
// Position-only updates are not logged.
func LogObserver(logger *slog.Logger) Observer {
	var last *Snapshot
	return ObserverFunc(func(s Snapshot) {
		if last != nil && last.State == s.State && last.Rate == s.Rate && last.Len == s.Len {
			last = &s
			return
		}
		logger.Debug("playback",
			"state", s.State.String(),
			"position", s.Position,
			"len", s.Len,
			"rate", s.Rate,
		)
		last = &s
	})
}
