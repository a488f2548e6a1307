package command

// Output
const (
	FilenameSyntax = "%(title)s.%(ext)s"
	YTDLP          = "yt-dlp"
)

// Format selection
const (
	FormatSep     = "/"
	FormatBest    = "best"
	FormatBestMP4 = "best[ext=mp4]"
	HeightCapMP4  = "best[ext=mp4][height<=%d]"
)

// BilibiliVideoFormats lists Bilibili DASH video-only stream IDs from
// highest to lowest quality: 4K, 1080P60, 1080P+, 1080P (AVC then HEVC),
// 720P, 480P, 360P.
var BilibiliVideoFormats = [...]string{
	"30120", "30116", "30112", "30080", "30077", "30064", "30032", "30016",
}
