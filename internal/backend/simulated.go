package backend

import (
	"context"
	"errors"
	"time"
)

// ErrSimulatedDownload is returned by Simulated.Download
var ErrSimulatedDownload = errors.New("demo mode: no videos are actually downloaded")

// DefaultSimulatedDelay mimics the latency of a real metadata lookup
const DefaultSimulatedDelay = 1500 * time.Millisecond

// Demo video shown by the simulated service
const (
	DemoTitle    = "How to Build a Next.js Application"
	DemoDuration = 642
	DemoAuthor   = "Coding Tutorials"
)

// DemoResolutions are offered for every simulated video, best first
var DemoResolutions = []string{"1080p", "720p", "480p", "360p"}

// Simulated is an offline Service that returns fixed details for any URL
type Simulated struct {
	Delay time.Duration
}

// NewSimulated creates a Simulated service with the default delay
func NewSimulated() *Simulated {
	return &Simulated{Delay: DefaultSimulatedDelay}
}

// FetchVideo waits for Delay, or until ctx is done, and returns the demo video
func (s *Simulated) FetchVideo(ctx context.Context, _ string) (*VideoResponse, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	resolutions := make([]ResolutionResponse, 0, len(DemoResolutions))
	for _, name := range DemoResolutions {
		resolutions = append(resolutions, ResolutionResponse{Name: name})
	}

	return &VideoResponse{
		Title:                DemoTitle,
		Duration:             DemoDuration,
		Uploader:             DemoAuthor,
		AvailableResolutions: resolutions,
	}, nil
}

// Download always fails with ErrSimulatedDownload
func (s *Simulated) Download(ctx context.Context, _, _ string) (*Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrSimulatedDownload
}
