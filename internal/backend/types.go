package backend

import (
	"io"
	"math"

	"github.com/fn7/yt-downloader/internal/model"
)

type videoRequest struct {
	URL string `json:"url"`
}

type downloadRequest struct {
	YoutubeURL string `json:"youtube_url"`
	VideoURL   string `json:"video_url"`
}

// ResolutionResponse is one entry of availableResolutions
type ResolutionResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MaxDurationSeconds caps the reported duration before it is converted to an int
const MaxDurationSeconds = math.MaxInt32

// VideoResponse is the body returned by POST /video
type VideoResponse struct {
	Title                string               `json:"title"`
	Thumbnail            string               `json:"thumbnail"`
	Duration             float64              `json:"duration"` // seconds
	Uploader             string               `json:"uploader"`
	AvailableResolutions []ResolutionResponse `json:"availableResolutions"`
}

// ToDetails converts the wire response into the form's VideoDetails,
// keeping the resolution order of the response.
func (vr *VideoResponse) ToDetails() *model.VideoDetails {
	resolutions := make([]model.Resolution, 0, len(vr.AvailableResolutions))
	for _, r := range vr.AvailableResolutions {
		resolutions = append(resolutions, model.Resolution{Name: r.Name, URL: r.URL})
	}

	return &model.VideoDetails{
		Title:                vr.Title,
		Thumbnail:            vr.Thumbnail,
		Duration:             model.FormatDuration(durationSeconds(vr.Duration)),
		Author:               vr.Uploader,
		AvailableResolutions: resolutions,
	}
}

// Payload is a downloaded video body. The caller must close Body.
type Payload struct {
	Body        io.ReadCloser
	Size        int64 // -1 when unknown
	ContentType string
}

// durationSeconds truncates a reported duration to whole seconds within [0, MaxDurationSeconds]
func durationSeconds(d float64) int {
	if math.IsNaN(d) || d <= 0 {
		return 0
	}
	return int(math.Min(d, MaxDurationSeconds))
}
