package models

import "fmt"

// Status is the terminal state of one download attempt.
type Status string

const (
	StatusSuccess        Status = "success"
	StatusDirectoryError Status = "directory-error"
	StatusDownloadError  Status = "download-error"
)

// ErrorCategory narrows down why a download failed.
type ErrorCategory string

const (
	CategoryNone        ErrorCategory = ""
	CategoryDirectory   ErrorCategory = "directory"
	CategoryNetwork     ErrorCategory = "network"
	CategoryUnavailable ErrorCategory = "unavailable"
	CategoryUnsupported ErrorCategory = "unsupported"
	CategoryExtraction  ErrorCategory = "extraction"
	CategoryFilesystem  ErrorCategory = "filesystem"
	CategoryCanceled    ErrorCategory = "canceled"
	CategoryUnknown     ErrorCategory = "unknown"
)

// Outcome is the result of one download. Failures are values, never panics.
type Outcome struct {
	Status   Status
	Category ErrorCategory
	Message  string

	URL      string
	Platform Platform
	Media    *Media
	Err      error
}

// OK reports whether the download succeeded.
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusSuccess:
		return fmt.Sprintf("%s: %s", o.Status, o.URL)
	default:
		return fmt.Sprintf("%s/%s: %s: %s", o.Status, o.Category, o.URL, o.Message)
	}
}

// Success builds a successful outcome.
func Success(url string, p Platform, m *Media) Outcome {
	return Outcome{
		Status:   StatusSuccess,
		URL:      url,
		Platform: p,
		Media:    m,
	}
}

// DirectoryError builds an outcome for an output directory that could not be created.
func DirectoryError(url string, err error) Outcome {
	return Outcome{
		Status:   StatusDirectoryError,
		Category: CategoryDirectory,
		Message:  err.Error(),
		URL:      url,
		Platform: PlatformUnknown,
		Err:      err,
	}
}

// DownloadError builds an outcome for a failed backend call.
func DownloadError(url string, p Platform, c ErrorCategory, err error) Outcome {
	return Outcome{
		Status:   StatusDownloadError,
		Category: c,
		Message:  err.Error(),
		URL:      url,
		Platform: p,
		Err:      err,
	}
}
