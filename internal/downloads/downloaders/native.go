package downloaders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"vidgrab/internal/domain/consts"
	"vidgrab/internal/models"
	"vidgrab/internal/utils/browser"
	"vidgrab/internal/utils/fs"
	"vidgrab/internal/utils/logging"

	"github.com/kkdai/youtube/v2"
)

// youTubeClient is the part of the kkdai client the native backend uses.
type youTubeClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Native downloads YouTube videos without yt-dlp, picking the best
// progressive (audio and video in one file) stream.
type Native struct {
	// Timeout bounds each HTTP request. Zero means none.
	Timeout time.Duration

	// Progress receives a progress bar while downloading. Nil disables it.
	Progress io.Writer

	newClient func(cfg models.DownloadConfig) (youTubeClient, error)
}

// NewNative returns a native YouTube backend.
func NewNative(progress io.Writer) *Native {
	n := &Native{Progress: progress}
	n.newClient = n.httpClient
	return n
}

// httpClient builds a kkdai client, carrying exported browser cookies when configured.
func (n *Native) httpClient(cfg models.DownloadConfig) (youTubeClient, error) {
	hc := &http.Client{Timeout: n.Timeout}

	if cfg.CookieFile != "" {
		cookies, err := browser.ReadNetscapeFile(cfg.CookieFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read cookie file: %w", err)
		}
		jar, err := browser.NewJar(cookies)
		if err != nil {
			return nil, fmt.Errorf("failed to build cookie jar: %w", err)
		}
		hc.Jar = jar
	}
	return &youtube.Client{HTTPClient: hc}, nil
}

// Fetch downloads a YouTube URL into cfg.OutputDir.
//
// The file is named after the sanitized video title.
func (n *Native) Fetch(ctx context.Context, url string, cfg models.DownloadConfig) (*models.Media, error) {
	if cfg.Platform != models.PlatformYouTube {
		return nil, fmt.Errorf("%w: native backend only handles YouTube, got %q", ErrUnsupported, cfg.Platform)
	}

	client, err := n.newClient(cfg)
	if err != nil {
		return nil, err
	}

	video, err := client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching video metadata: %w", err)
	}

	format, err := selectFormat(video)
	if err != nil {
		return nil, err
	}
	logging.D(1, "Selected itag %d (%s, %dp) for %q", format.ItagNo, format.MimeType, format.Height, url)

	path := filepath.Join(cfg.OutputDir, outputName(video, format))

	stream, size, err := client.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	defer stream.Close()

	if err := n.save(stream, size, path); err != nil {
		return nil, err
	}

	return &models.Media{
		Title:      video.Title,
		Duration:   video.Duration,
		UploadDate: video.PublishDate,
		Path:       path,
		Extractor:  consts.BackendNative,
	}, nil
}

// save writes the stream to path, removing the partial file on failure.
func (n *Native) save(stream io.Reader, size int64, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
		if err != nil {
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				logging.E("Failed to remove partial file %q: %v", path, rmErr)
			}
		}
	}()

	var dst io.Writer = f
	if n.Progress != nil {
		if size <= 0 {
			size = -1
		}
		bar := newBar(n.Progress, size, filepath.Base(path))
		defer bar.Finish()
		dst = io.MultiWriter(f, bar)
	}

	if _, err := io.Copy(dst, stream); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// selectFormat picks the best progressive format, preferring MP4.
func selectFormat(video *youtube.Video) (*youtube.Format, error) {
	var bestMP4, bestAny *youtube.Format

	for i := range video.Formats {
		f := &video.Formats[i]
		if f.AudioChannels == 0 || f.Height == 0 {
			continue
		}
		if bestAny == nil || betterFormat(f, bestAny) {
			bestAny = f
		}
		if containerOf(f) == "mp4" && (bestMP4 == nil || betterFormat(f, bestMP4)) {
			bestMP4 = f
		}
	}

	switch {
	case bestMP4 != nil:
		return bestMP4, nil
	case bestAny != nil:
		return bestAny, nil
	default:
		return nil, errors.New("no progressive (audio+video) formats available")
	}
}

func betterFormat(candidate, current *youtube.Format) bool {
	if candidate.Height != current.Height {
		return candidate.Height > current.Height
	}
	return bitrateForFormat(candidate) > bitrateForFormat(current)
}

func bitrateForFormat(f *youtube.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	return f.AverageBitrate
}

// containerOf extracts the container from a MIME type like `video/mp4; codecs="avc1"`.
func containerOf(f *youtube.Format) string {
	mime := f.MimeType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if i := strings.Index(mime, "/"); i >= 0 {
		mime = mime[i+1:]
	}
	mime = strings.TrimSpace(mime)
	if mime == "" {
		return "mp4"
	}
	return mime
}

// outputName builds "<sanitized title>.<ext>", falling back to the video ID.
func outputName(video *youtube.Video, format *youtube.Format) string {
	title := strings.TrimSpace(video.Title)
	if title == "" {
		title = video.ID
	}
	ext := "." + containerOf(format)
	return fs.SanitizeFilename(title) + ext
}
