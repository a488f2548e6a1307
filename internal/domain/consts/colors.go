package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[96m"
)

// Coloured console tags.
const (
	RedError     string = ColorRed + "[ERROR] " + ColorReset
	GreenSuccess string = ColorGreen + "[Success] " + ColorReset
	YellowDebug  string = ColorYellow + "[Debug] " + ColorReset
	BlueInfo     string = ColorCyan + "[Info] " + ColorReset
)

// Plain console tags, used when stdout is not a terminal.
const (
	PlainError   string = "[ERROR] "
	PlainSuccess string = "[Success] "
	PlainDebug   string = "[Debug] "
	PlainInfo    string = "[Info] "
)
