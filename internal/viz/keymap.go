package viz

// Key binding constants used in handleKey.
const (
	KeyQuit     = "q"
	KeyCtrlC    = "ctrl+c"
	KeyToggle   = " "
	KeyRestart  = "r"
	KeyBack     = "left"
	KeyBackH    = "h"
	KeyForward  = "right"
	KeyForwardL = "l"
	KeyFaster   = "up"
	KeyFasterK  = "k"
	KeySlower   = "down"
	KeySlowerJ  = "j"
	KeyTheme    = "t"
	KeyHelp     = "?"
)
