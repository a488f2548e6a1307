// Package presets picks the per-site download settings.
package presets

import (
	"fmt"
	"path/filepath"
	"strings"
	"vidgrab/internal/domain/command"
	"vidgrab/internal/models"
)

// Select is the entrypoint for download presets.
//
// It never fails: platforms without a preset get the default one.
func Select(p models.Platform, outputDir string, opts models.DownloadOptions) models.DownloadConfig {
	var prefs []string
	switch p {
	case models.PlatformBilibili:
		prefs = bilibiliPreset()
	default:
		prefs = defaultPreset(opts.MaxHeight)
	}

	return models.DownloadConfig{
		Platform:           p,
		Format:             strings.Join(prefs, command.FormatSep),
		FormatPreference:   prefs,
		OutputDir:          outputDir,
		OutputTemplate:     filepath.Join(outputDir, command.FilenameSyntax),
		RestrictFilenames:  true,
		NoWarnings:         true,
		CookiesFromBrowser: opts.CookiesFromBrowser,
		CookieFile:         opts.CookieFile,
		Retries:            opts.Retries,
	}
}

// bilibiliPreset asks for Bilibili's video-only DASH streams, best first.
func bilibiliPreset() []string {
	prefs := make([]string, 0, len(command.BilibiliVideoFormats)+1)
	prefs = append(prefs, command.BilibiliVideoFormats[:]...)
	return append(prefs, command.FormatBest)
}

// defaultPreset prefers MP4, optionally capped at maxHeight.
func defaultPreset(maxHeight int) []string {
	prefs := make([]string, 0, 3)
	if maxHeight > 0 {
		prefs = append(prefs, fmt.Sprintf(command.HeightCapMP4, maxHeight))
	}
	return append(prefs, command.FormatBestMP4, command.FormatBest)
}
