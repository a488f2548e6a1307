// Package consts holds various global, unchanging values.
package consts

// Program
const (
	ProgramName      = "vidgrab"
	EnvPrefix        = "VIDGRAB"
	DefaultOutputDir = "./downloads/jpk"
	DemoURL          = "https://www.youtube.com/watch?v=WCDLyXJgbIo"
	DefaultEncoding  = "utf-8"
)

// Backends
const (
	BackendYTDLP  = "ytdlp"
	BackendNative = "native"
)

// Filenames
const (
	MaxFilenameLen      = 200
	FilenameReplacement = '_'
	ForbiddenChars      = `<>:"/\|?*`
)

// Host markers, matched as substrings of the URL.
var (
	BilibiliHosts = [...]string{"bilibili.com", "b23.tv"}
	YouTubeHosts  = [...]string{"youtube.com", "youtu.be"}
)
