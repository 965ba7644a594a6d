package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Endpoint paths relative to the backend base URL
const (
	VideoPath    = "/video"
	DownloadPath = "/download"
)

// Request header names and values
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
	ContentTypeJSON   = "application/json"
	DefaultUserAgent  = "fn7-yt-downloader"
)

// maxErrorBody bounds how much of a failed response is kept in StatusError
const maxErrorBody = 512

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client calls the metadata and download endpoints of a backend
type Client struct {
	baseURL   string
	http      HTTPClient
	userAgent string
}

// NewClient creates a backend client for baseURL. A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		userAgent: DefaultUserAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent to the backend
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// BaseURL returns the backend base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchVideo posts the raw source URL to the metadata service
func (c *Client) FetchVideo(ctx context.Context, sourceURL string) (*VideoResponse, error) {
	resp, err := c.post(ctx, VideoPath, videoRequest{URL: sourceURL})
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	var out VideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", VideoPath, err)
	}
	return &out, nil
}

// Download posts the source URL and the chosen media URL to the download service.
// The returned payload streams the response body.
func (c *Client) Download(ctx context.Context, sourceURL, mediaURL string) (*Payload, error) {
	resp, err := c.post(ctx, DownloadPath, downloadRequest{YoutubeURL: sourceURL, VideoURL: mediaURL})
	if err != nil {
		return nil, err
	}

	return &Payload{
		Body:        resp.Body,
		Size:        resp.ContentLength,
		ContentType: resp.Header.Get(HeaderContentType),
	}, nil
}

// post sends a JSON body and returns the response when the status is 2xx
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderUserAgent, c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)

	logrus.WithFields(logrus.Fields{
		"endpoint":   path,
		"request_id": requestID,
	}).Debug("sending backend request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer closeBody(resp.Body)
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return resp, nil
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logrus.WithError(err).Warn("failed to close response body")
	}
}
