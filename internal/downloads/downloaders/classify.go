package downloaders

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"regexp"
	"strings"
	"syscall"
	"vidgrab/internal/models"

	"github.com/kkdai/youtube/v2"
)

// Message markers, matched against the lower-cased error text.
var (
	unavailableMarkers = []string{
		"private",
		"sign in",
		"login",
		"members only",
		"premium",
		"copyright",
		"video unavailable",
		"content unavailable",
		"age-restricted",
		"age restricted",
		"not available",
		"geo",
		"removed",
		"http error 404",
	}
	unsupportedMarkers = []string{
		"unsupported url",
		"no suitable extractor",
		"is not a valid url",
	}
	extractionMarkers = []string{
		"unable to extract",
		"requested format is not available",
		"no video formats found",
		"no progressive",
		"unable to download json metadata",
		"signature",
		"cipher",
	}
	networkMarkers = []string{
		"http error",
		"unable to download webpage",
		"connection",
		"timed out",
		"timeout",
		"network",
		"name resolution",
		"no such host",
		"tls",
		"ssl",
	}
	filesystemMarkers = []string{
		"no space left",
		"permission denied",
		"read-only file system",
		"file name too long",
	}
)

// Classify maps a backend error to an error category.
//
// Typed errors are checked first, then the message text.
func Classify(err error) models.ErrorCategory {
	if err == nil {
		return models.CategoryNone
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.CategoryCanceled
	case errors.Is(err, ErrUnsupported):
		return models.CategoryUnsupported
	case errors.Is(err, syscall.ENOSPC):
		return models.CategoryFilesystem
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return models.CategoryFilesystem
	}

	var statusErr youtube.ErrUnexpectedStatusCode
	if errors.As(err, &statusErr) {
		switch int(statusErr) {
		case 403, 404, 410, 451:
			return models.CategoryUnavailable
		default:
			return models.CategoryNetwork
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return models.CategoryNetwork
	}

	msg := reasonText(err.Error())
	switch {
	case containsAny(msg, unsupportedMarkers):
		return models.CategoryUnsupported
	case containsAny(msg, filesystemMarkers):
		return models.CategoryFilesystem
	case containsAny(msg, extractionMarkers):
		return models.CategoryExtraction
	case containsAny(msg, unavailableMarkers):
		return models.CategoryUnavailable
	case containsAny(msg, networkMarkers):
		return models.CategoryNetwork
	default:
		return models.CategoryUnknown
	}
}

// urlPattern matches URLs quoted inside error text.
var urlPattern = regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://\S+`)

// reasonText returns the lower-cased part of an error message that explains it:
// the text after yt-dlp's last "ERROR:" tag when present, with URLs removed.
func reasonText(msg string) string {
	msg = strings.ToLower(msg)
	if i := strings.LastIndex(msg, "error:"); i >= 0 {
		msg = msg[i+len("error:"):]
	}
	return urlPattern.ReplaceAllString(msg, "")
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
