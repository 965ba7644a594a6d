package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fn7/yt-downloader/internal/backend"
	"github.com/fn7/yt-downloader/internal/download"
	"github.com/fn7/yt-downloader/internal/model"
)

// Options tune the form behavior
type Options struct {
	// StrictURLCheck rejects input that is not a youtube.com or youtu.be link
	StrictURLCheck bool

	// DefaultResolution is preselected after a load when the video offers it
	DefaultResolution string

	// DefaultFormat is the initial format selection
	DefaultFormat model.Format
}

// Controller is the download form
type Controller struct {
	mu    sync.Mutex
	state model.FormState

	metadata  backend.MetadataService
	downloads backend.DownloadService
	saver     download.FileSaver
	opts      Options

	onUpdate   func(model.FormState)
	onProgress download.ProgressFunc
}

// New creates a form controller
func New(metadata backend.MetadataService, downloads backend.DownloadService, saver download.FileSaver, opts Options) *Controller {
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = model.DefaultFormat
	}

	return &Controller{
		state:     model.FormState{SelectedFormat: opts.DefaultFormat},
		metadata:  metadata,
		downloads: downloads,
		saver:     saver,
		opts:      opts,
	}
}

// SetUpdateCallback sets the observer called with a snapshot after every change
func (c *Controller) SetUpdateCallback(callback func(model.FormState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetProgressCallback sets the observer for bytes written while saving
func (c *Controller) SetProgressCallback(callback download.ProgressFunc) {
	c.mu.Lock()
	c.onProgress = callback
	c.mu.Unlock()
}

// State returns a snapshot of the form
func (c *Controller) State() model.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Status returns the derived form status
func (c *Controller) Status() model.FormStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status()
}

// SetURL records an edit of the URL field
func (c *Controller) SetURL(url string) {
	c.update(func(s *model.FormState) {
		s.URL = url
	})
}

// SelectResolution records the chosen quality. The name is not checked against the
// available resolutions.
func (c *Controller) SelectResolution(name string) {
	c.update(func(s *model.FormState) {
		s.SelectedResolutionName = name
	})
}

// SelectFormat records the chosen format
func (c *Controller) SelectFormat(format model.Format) {
	c.update(func(s *model.FormState) {
		s.SelectedFormat = format
	})
}

// SubmitURL validates url and fetches its metadata. A rejected URL sets the inline
// error and returns ErrInvalidURL without any network call. A failed fetch leaves
// the form without details or message and returns the error.
func (c *Controller) SubmitURL(ctx context.Context, url string) error {
	if err := ValidateURL(url, c.opts.StrictURLCheck); err != nil {
		c.update(func(s *model.FormState) {
			s.URL = url
			s.Error = InvalidURLMessage
		})
		logrus.WithField("url", url).Debug("url rejected")
		return err
	}

	c.update(func(s *model.FormState) {
		s.URL = url
		s.Error = ""
		s.Details = nil
		s.SelectedResolutionName = ""
		s.SavedPath = ""
		s.Loading = true
	})

	log := logrus.WithField("url", url)
	log.Info("fetching video details")

	resp, err := c.metadata.FetchVideo(ctx, url)
	if err != nil {
		c.update(func(s *model.FormState) {
			s.Loading = false
		})
		log.WithError(err).Error("failed to fetch video details")
		return fmt.Errorf("fetch video details: %w", err)
	}

	details := resp.ToDetails()
	c.update(func(s *model.FormState) {
		s.Loading = false
		s.Details = details
		if _, ok := details.FindResolution(c.opts.DefaultResolution); ok {
			s.SelectedResolutionName = c.opts.DefaultResolution
		}
	})

	log.WithFields(logrus.Fields{
		"title":       details.Title,
		"duration":    details.Duration,
		"resolutions": strings.Join(details.ResolutionNames(), ","),
	}).Info("video details loaded")

	return nil
}

// DownloadSelected downloads the selected resolution of the current URL and saves
// it as "<title>.mp4". When no resolution matches the selection an empty media URL
// is sent. It returns the saved path.
func (c *Controller) DownloadSelected(ctx context.Context) (string, error) {
	c.mu.Lock()
	sourceURL := c.state.URL
	resolution := c.state.SelectedResolutionName
	var title, mediaURL string
	if c.state.Details != nil {
		title = c.state.Details.Title
		if r, ok := c.state.Details.FindResolution(resolution); ok {
			mediaURL = r.URL
		}
	}
	progress := c.onProgress
	c.mu.Unlock()

	c.update(func(s *model.FormState) {
		s.Downloading = true
		s.SavedPath = ""
	})

	log := logrus.WithFields(logrus.Fields{
		"url":        sourceURL,
		"resolution": resolution,
	})
	if mediaURL == "" {
		log.Warn("no media url for the selected resolution")
	}
	log.Info("downloading video")

	path, err := c.fetchAndSave(ctx, sourceURL, mediaURL, title, progress)

	c.update(func(s *model.FormState) {
		s.Downloading = false
		if err == nil {
			s.SavedPath = path
		}
	})

	if err != nil {
		log.WithError(err).Error("download failed")
		return "", err
	}

	log.WithField("path", path).Info("download complete")
	return path, nil
}

func (c *Controller) fetchAndSave(ctx context.Context, sourceURL, mediaURL, title string, progress download.ProgressFunc) (string, error) {
	payload, err := c.downloads.Download(ctx, sourceURL, mediaURL)
	if err != nil {
		return "", fmt.Errorf("download video: %w", err)
	}
	defer func() {
		if err := payload.Body.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close download body")
		}
	}()

	path, err := c.saver.Save(title, payload.Body, payload.Size, progress)
	if err != nil {
		return "", fmt.Errorf("save video: %w", err)
	}
	return path, nil
}

// update applies fn under the lock and notifies the observer with the result
func (c *Controller) update(fn func(*model.FormState)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.Clone()
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
