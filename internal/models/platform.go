package models

// Platform identifies the video site a URL belongs to.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformBilibili Platform = "bilibili"
	PlatformUnknown  Platform = "unknown"
)

// Valid reports whether p is one of the known platform tags.
func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformBilibili, PlatformUnknown:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
