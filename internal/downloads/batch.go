package downloads

import (
	"context"
	"vidgrab/internal/models"
	"vidgrab/internal/platform"
	"vidgrab/internal/utils/logging"
)

// RunBatch downloads each URL in order, one at a time, into outputDir.
//
// A failed item never stops the batch. If ctx is cancelled the remaining
// items are reported as cancelled without being attempted, so the result
// always holds one outcome per URL, in input order.
func (d *Downloader) RunBatch(ctx context.Context, urls []string, outputDir string) []models.Outcome {
	total := len(urls)
	outcomes := make([]models.Outcome, 0, total)

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, models.DownloadError(u, platform.Detect(u), models.CategoryCanceled, err))
			continue
		}

		logging.P("\nDownloading %d/%d...", i+1, total)
		outcomes = append(outcomes, d.Download(ctx, u, outputDir))
	}

	ok, failed := Tally(outcomes)
	logging.I("Batch finished: OK %d | FAIL %d | TOTAL %d", ok, failed, total)

	return outcomes
}

// Tally counts successful and failed outcomes.
func Tally(outcomes []models.Outcome) (ok, failed int) {
	for _, o := range outcomes {
		if o.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
