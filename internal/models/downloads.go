// Package models holds the data types passed between vidgrab's packages.
package models

import (
	"fmt"
	"time"
)

// DownloadConfig is the option record handed to a downloader backend.
//
// It is built fresh for every download and not modified afterwards.
type DownloadConfig struct {
	Platform Platform

	// Format is FormatPreference joined into a yt-dlp format expression.
	Format           string
	FormatPreference []string

	OutputDir         string
	OutputTemplate    string
	RestrictFilenames bool
	NoWarnings        bool

	// Transport
	CookiesFromBrowser string
	CookieFile         string
	Retries            int
}

// DownloadOptions carries the user settings the selector copies onto a DownloadConfig.
type DownloadOptions struct {
	MaxHeight          int
	CookiesFromBrowser string
	CookieFile         string
	Retries            int
}

// Request is a single download job.
type Request struct {
	ID        string
	URL       string
	OutputDir string
}

// Media describes what a backend fetched.
type Media struct {
	Title      string
	Duration   time.Duration
	UploadDate time.Time
	Path       string
	Extractor  string
}

// DurationString renders the duration the way the console reports it, e.g. "3 min 25 sec".
func (m *Media) DurationString() string {
	if m == nil || m.Duration <= 0 {
		return ""
	}
	total := int(m.Duration.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d min %d sec", total/60, total%60)
}
