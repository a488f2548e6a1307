// Package platform maps a URL to the video site it belongs to.
package platform

import (
	"strings"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/models"
)

// Detect classifies a URL by substring match on its host markers.
//
// Bilibili markers are checked first. The match is case-insensitive and total:
// anything unrecognised is PlatformUnknown.
func Detect(rawURL string) models.Platform {
	u := strings.ToLower(rawURL)

	switch {
	case containsAny(u, consts.BilibiliHosts[:]):
		return models.PlatformBilibili
	case containsAny(u, consts.YouTubeHosts[:]):
		return models.PlatformYouTube
	default:
		return models.PlatformUnknown
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
