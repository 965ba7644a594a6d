package download

import "io"

// ProgressFunc receives the number of bytes written so far and the expected total.
// total is -1 when the size is unknown.
type ProgressFunc func(written, total int64)

// FileSaver defines the interface for persisting a downloaded video.
type FileSaver interface {
	// Save writes body as "<title>.mp4" and returns the final path
	Save(title string, body io.Reader, size int64, progress ProgressFunc) (string, error)

	// Dir returns the directory files are saved into
	Dir() string
}
