package downloaders

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/models"
	"vidgrab/internal/utils/logging"

	"github.com/araddon/dateparse"
	"github.com/lrstanley/go-ytdlp"
	"github.com/schollz/progressbar/v3"
)

// YTDLP downloads through the yt-dlp executable.
type YTDLP struct {
	// Executable overrides the yt-dlp binary looked up on PATH.
	Executable string

	// Progress receives a progress bar while downloading. Nil disables it.
	Progress io.Writer
}

// NewYTDLP returns a yt-dlp backend.
func NewYTDLP(executable string, progress io.Writer) *YTDLP {
	return &YTDLP{
		Executable: executable,
		Progress:   progress,
	}
}

// Fetch runs yt-dlp for url and reads the saved file's details back from its JSON output.
func (y *YTDLP) Fetch(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error) {
	dl := ytdlp.New().
		Format(cfg.Format).
		Output(cfg.OutputTemplate).
		PrintJSON()

	if cfg.RestrictFilenames {
		dl.RestrictFilenames()
	}
	if cfg.NoWarnings {
		dl.NoWarnings()
	}

	switch {
	case cfg.CookieFile != "":
		dl.Cookies(cfg.CookieFile)
	case cfg.CookiesFromBrowser != "":
		dl.CookiesFromBrowser(cfg.CookiesFromBrowser)
	}

	if cfg.Retries > 0 {
		dl.Retries(strconv.Itoa(cfg.Retries))
	}
	if y.Executable != "" {
		dl.SetExecutable(y.Executable)
	}

	var bar *progressbar.ProgressBar
	if y.Progress != nil {
		bar = newBar(y.Progress, -1, "downloading")
		dl.ProgressFunc(250*time.Millisecond, func(u ytdlp.ProgressUpdate) {
			if u.TotalBytes > 0 {
				bar.ChangeMax(u.TotalBytes)
			}
			_ = bar.Set(u.DownloadedBytes)
		})
	}

	logging.D(1, "Running yt-dlp for %q with format %q, output %q", url, cfg.Format, cfg.OutputTemplate)

	res, err := dl.Run(ctx, url)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if res != nil {
			if tail := lastLine(res.Stderr); tail != "" {
				return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, tail)
			}
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	m := &models.Media{Extractor: consts.BackendYTDLP}
	info, err := res.GetExtractedInfo()
	if err != nil {
		logging.D(1, "Could not read yt-dlp JSON output for %q: %v", url, err)
		return m, nil
	}
	if len(info) > 0 {
		fillMedia(m, info[0])
	}
	return m, nil
}

// fillMedia copies the fields vidgrab reports from yt-dlp's extracted info.
func fillMedia(m *models.Media, info *ytdlp.ExtractedInfo) {
	if info == nil {
		return
	}
	if info.Title != nil {
		m.Title = *info.Title
	}
	if info.Duration != nil && *info.Duration > 0 {
		m.Duration = time.Duration(*info.Duration * float64(time.Second))
	}
	if info.Filename != nil {
		m.Path = *info.Filename
	}
	if info.UploadDate != nil {
		m.UploadDate = parseUploadDate(*info.UploadDate)
	}
}

// parseUploadDate parses yt-dlp's upload_date (usually YYYYMMDD). Unparseable dates are zero.
func parseUploadDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		logging.D(2, "Unrecognised upload date %q: %v", s, err)
		return time.Time{}
	}
	return t
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
