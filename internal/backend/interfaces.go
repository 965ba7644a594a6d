package backend

import (
	"context"
	"net/http"
)

// HTTPClient is the transport used for backend calls. Both *http.Client and the
// browser-fingerprinted client returned by NewHTTPClient satisfy it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MetadataService resolves a source URL into video metadata.
type MetadataService interface {
	FetchVideo(ctx context.Context, sourceURL string) (*VideoResponse, error)
}

// DownloadService returns the bytes of a resolved media URL.
type DownloadService interface {
	Download(ctx context.Context, sourceURL, mediaURL string) (*Payload, error)
}

// Service is implemented by backends that provide both endpoints.
type Service interface {
	MetadataService
	DownloadService
}
