package download

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/fn7/yt-downloader/internal/model"
	"github.com/fn7/yt-downloader/internal/platform"
)

// PartSuffix marks a file that is still being written
const PartSuffix = ".part"

// Saver writes downloaded videos into a directory
type Saver struct {
	fs  afero.Fs
	dir string
}

// NewSaver creates a saver writing into dir on fs
func NewSaver(fs afero.Fs, dir string) *Saver {
	return &Saver{fs: fs, dir: dir}
}

// NewOSSaver creates a saver on the operating system filesystem
func NewOSSaver(dir string) *Saver {
	return NewSaver(afero.NewOsFs(), dir)
}

// Dir returns the target directory
func (s *Saver) Dir() string {
	return s.dir
}

// Path returns where a video with the given title is saved
func (s *Saver) Path(title string) string {
	return filepath.Join(s.dir, platform.SanitizeFilename(title)+model.FileExtension)
}

// Save copies body into "<title>.mp4". The data goes to a ".part" file first and is
// renamed once complete, so a failed copy never leaves a truncated video behind.
// An existing file with the same name is replaced.
func (s *Saver) Save(title string, body io.Reader, size int64, progress ProgressFunc) (string, error) {
	if err := s.fs.MkdirAll(s.dir, platform.DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create download directory %s: %w", s.dir, err)
	}

	finalPath := s.Path(title)
	partPath := finalPath + PartSuffix

	f, err := s.fs.OpenFile(partPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, platform.DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", partPath, err)
	}

	pw := newProgressWriter(size, progress)
	written, copyErr := io.Copy(io.MultiWriter(f, pw), body)
	closeErr := f.Close()
	pw.flush()

	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		if err := s.fs.Remove(partPath); err != nil {
			logrus.WithError(err).WithField("path", partPath).Warn("failed to remove partial file")
		}
		return "", fmt.Errorf("failed to write %s: %w", finalPath, copyErr)
	}

	if err := s.fs.Rename(partPath, finalPath); err != nil {
		return "", fmt.Errorf("failed to finalize %s: %w", finalPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": finalPath,
		"size": humanize.Bytes(uint64(written)),
	}).Info("video saved")

	return finalPath, nil
}
