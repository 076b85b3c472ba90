// Package viz provides the terminal front end of the reader.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: full-screen reader driven by a playback.Controller
//   - [Printer]: line-per-token output for pipes and plain terminals
//   - [RenderStats]: asciigraph summary of a token sequence
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	R     - Restart from the first word
//	←/H   - Back 5 words
//	→/L   - Forward 5 words
//	↑/K   - Faster (+25 wpm)
//	↓/J   - Slower (-25 wpm)
//	1-4   - Rate presets
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
