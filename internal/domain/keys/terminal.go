// Package keys holds the terminal flag names, which double as Viper keys.
package keys

// Output.
const (
	OutputDir string = "output-dir"
	MaxHeight string = "max-height"
)

// Downloader.
const (
	Backend       string = "backend"
	YTDLPPath     string = "ytdlp-path"
	DLRetries     string = "dl-retries"
	CookieSource  string = "cookies-from-browser"
	ExportCookies string = "export-cookies"
)

// Program.
const (
	ConfigFile      string = "config-file"
	ConsoleEncoding string = "console-encoding"
	LogFile         string = "log-file"
	DebugLevel      string = "debug-level"
)
