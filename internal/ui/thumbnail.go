package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"fyne.io/fyne/v2"

	"github.com/fn7/yt-downloader/internal/backend"
)

// MaxThumbnailBytes bounds the size of a downloaded preview image
const MaxThumbnailBytes = 8 << 20

// ErrNoThumbnail is returned for empty or non-http thumbnail references
var ErrNoThumbnail = errors.New("no remote thumbnail")

// ThumbnailLoader fetches preview images for the details card
type ThumbnailLoader struct {
	client backend.HTTPClient
}

// NewThumbnailLoader creates a loader using client
func NewThumbnailLoader(client backend.HTTPClient) *ThumbnailLoader {
	return &ThumbnailLoader{client: client}
}

// Load downloads the image at rawURL as a fyne resource
func (l *ThumbnailLoader) Load(ctx context.Context, rawURL string) (fyne.Resource, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrNoThumbnail
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch thumbnail: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read thumbnail: %w", err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "thumbnail"
	}
	return fyne.NewStaticResource(name, data), nil
}
