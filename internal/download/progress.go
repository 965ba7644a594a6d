package download

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ProgressInterval limits how often ProgressFunc is called while copying
const ProgressInterval = 250 * time.Millisecond

// progressWriter counts bytes and reports them at most once per interval
type progressWriter struct {
	total    int64
	written  int64
	fn       ProgressFunc
	interval time.Duration
	last     time.Time
}

func newProgressWriter(total int64, fn ProgressFunc) *progressWriter {
	return &progressWriter{total: total, fn: fn, interval: ProgressInterval}
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.fn == nil {
		return len(p), nil
	}

	now := time.Now()
	if now.Sub(w.last) >= w.interval {
		w.last = now
		w.fn(w.written, w.total)
	}
	return len(p), nil
}

// flush reports the final count regardless of the interval
func (w *progressWriter) flush() {
	if w.fn != nil {
		w.fn(w.written, w.total)
	}
}

// Fraction returns written/total in [0,1], or -1 when total is unknown
func Fraction(written, total int64) float64 {
	if total <= 0 {
		return -1
	}
	if written >= total {
		return 1
	}
	return float64(written) / float64(total)
}

// FormatProgress renders progress like "12 MB / 40 MB" or "12 MB" when the total is unknown
func FormatProgress(written, total int64) string {
	if written < 0 {
		written = 0
	}
	if total <= 0 {
		return humanize.Bytes(uint64(written))
	}
	return fmt.Sprintf("%s / %s", humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)))
}
