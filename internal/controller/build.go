package controller

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fn7/yt-downloader/internal/backend"
	"github.com/fn7/yt-downloader/internal/config"
	"github.com/fn7/yt-downloader/internal/download"
)

// NewFromOptions wires a controller for the configured mode: the HTTP backend in
// live mode or the simulated backend in demo mode, saving into opts.DownloadDir.
func NewFromOptions(opts *config.Options) (*Controller, error) {
	var svc backend.Service
	switch opts.Mode() {
	case config.ModeDemo:
		svc = backend.NewSimulated()
	default:
		httpClient, err := backend.NewHTTPClient(backend.TransportOptions{TLSFingerprint: opts.TLSFingerprint})
		if err != nil {
			return nil, fmt.Errorf("create http client: %w", err)
		}
		svc = backend.NewClient(opts.BackendURL, httpClient)
	}

	logrus.WithFields(logrus.Fields{
		"mode":            opts.Mode(),
		"backend_url":     opts.BackendURL,
		"download_dir":    opts.DownloadDir,
		"strict_url":      opts.StrictURLCheck,
		"tls_fingerprint": opts.TLSFingerprint,
	}).Debug("building form controller")

	return New(svc, svc, download.NewOSSaver(opts.DownloadDir), Options{
		StrictURLCheck:    opts.StrictURLCheck,
		DefaultResolution: opts.DefaultResolution(),
	}), nil
}
