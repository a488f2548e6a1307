// Package downloads runs single and batch downloads and reports their outcomes.
package downloads

import (
	"context"
	"fmt"
	"strings"
	"vidgrab/internal/config/presets"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/downloads/downloaders"
	"vidgrab/internal/models"
	"vidgrab/internal/platform"
	"vidgrab/internal/utils/fs"
	"vidgrab/internal/utils/logging"

	"github.com/google/uuid"
)

// CookieExporter writes browser cookies for a URL's site to a cookie file.
type CookieExporter interface {
	Export(rawURL string, p models.Platform) (string, error)
}

// Downloader ties platform detection, preset selection and a backend together.
type Downloader struct {
	Fetcher downloaders.Fetcher
	Options models.DownloadOptions

	// DefaultDir is used when a request has no output directory.
	DefaultDir string

	// Cookies, when set, exports browser cookies before each download.
	Cookies CookieExporter
}

// NewDownloader returns a Downloader using the given backend.
func NewDownloader(f downloaders.Fetcher, opts models.DownloadOptions, defaultDir string) *Downloader {
	if defaultDir == "" {
		defaultDir = consts.DefaultOutputDir
	}
	return &Downloader{
		Fetcher:    f,
		Options:    opts,
		DefaultDir: defaultDir,
	}
}

// Download fetches one URL into outputDir (the default directory if empty).
//
// Failures are returned as the Outcome and printed, never propagated.
func (d *Downloader) Download(ctx context.Context, url, outputDir string) models.Outcome {
	req := models.Request{
		ID:        uuid.NewString(),
		URL:       strings.TrimSpace(url),
		OutputDir: outputDir,
	}
	if req.OutputDir == "" {
		req.OutputDir = d.DefaultDir
	}
	return d.run(ctx, req)
}

func (d *Downloader) run(ctx context.Context, req models.Request) (out models.Outcome) {
	log := logging.Log().With().Str("request_id", req.ID).Str("url", req.URL).Logger()

	// Platform stays unknown until detection has run.
	p := models.PlatformUnknown
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("downloader panicked: %v", r)
			logging.E("Download failed: %v", err)
			log.Error().Err(err).Msg("download panicked")
			out = models.DownloadError(req.URL, p, models.CategoryUnknown, err)
		}
	}()

	if err := fs.EnsureDir(req.OutputDir); err != nil {
		logging.E("Failed to create output directory %q: %v", req.OutputDir, err)
		log.Error().Err(err).Str("dir", req.OutputDir).Msg("output directory")
		return models.DirectoryError(req.URL, err)
	}

	p = platform.Detect(req.URL)
	opts := d.Options
	if d.Cookies != nil && opts.CookieFile == "" {
		path, err := d.Cookies.Export(req.URL, p)
		if err != nil {
			logging.E("Failed to export browser cookies for %q: %v", req.URL, err)
		} else {
			opts.CookieFile = path
		}
	}
	cfg := presets.Select(p, req.OutputDir, opts)

	logging.I("Starting download: %s", req.URL)
	logging.I("Platform: %s", p)
	log.Info().Str("platform", p.String()).Str("format", cfg.Format).Str("dir", req.OutputDir).Msg("download started")

	media, err := d.Fetcher.Fetch(ctx, req.URL, cfg)
	if err != nil {
		category := downloaders.Classify(err)
		logging.E("Download failed: %v", err)
		log.Error().Err(err).Str("category", string(category)).Msg("download failed")
		return models.DownloadError(req.URL, p, category, err)
	}

	if media != nil {
		if media.Title != "" {
			logging.I("Video title: %s", media.Title)
		}
		if dur := media.DurationString(); dur != "" {
			logging.I("Duration: %s", dur)
		}
		if !media.UploadDate.IsZero() {
			logging.I("Uploaded: %s", media.UploadDate.Format("2006-01-02"))
		}
	}
	logging.S("Download complete! Saved to: %s", req.OutputDir)

	ev := log.Info().Str("platform", p.String())
	if media != nil {
		ev = ev.Str("title", media.Title).Str("path", media.Path).Str("backend", media.Extractor)
	}
	ev.Msg("download complete")

	return models.Success(req.URL, p, media)
}
