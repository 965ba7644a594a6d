package model

import (
	"fmt"
	"strconv"
	"strings"
)

// HDMinLines is the smallest vertical resolution labelled as HD
const HDMinLines = 720

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Resolution is a single downloadable variant offered by the metadata service
type Resolution struct {
	Name string // display name, e.g. "720p"
	URL  string // resolved media URL passed back to the download service
}

// VideoDetails holds the metadata shown after a successful analysis
type VideoDetails struct {
	Title                string
	Thumbnail            string // thumbnail URL
	Duration             string // formatted as [hh:]mm:ss
	Author               string
	AvailableResolutions []Resolution
}

// FindResolution returns the resolution with the given name.
// The second value is false when no entry matches.
func (vd *VideoDetails) FindResolution(name string) (Resolution, bool) {
	if vd == nil {
		return Resolution{}, false
	}
	for _, r := range vd.AvailableResolutions {
		if r.Name == name {
			return r, true
		}
	}
	return Resolution{}, false
}

// ResolutionNames returns the resolution names in the order they were received
func (vd *VideoDetails) ResolutionNames() []string {
	if vd == nil {
		return nil
	}
	names := make([]string, 0, len(vd.AvailableResolutions))
	for _, r := range vd.AvailableResolutions {
		names = append(names, r.Name)
	}
	return names
}

// Label returns the selector text for the resolution: "720p HD" for names like
// "720p" with at least HDMinLines lines, the plain name otherwise.
func (r Resolution) Label() string {
	lines, err := strconv.Atoi(strings.TrimSuffix(r.Name, "p"))
	if err != nil || !strings.HasSuffix(r.Name, "p") || lines < HDMinLines {
		return r.Name
	}
	return r.Name + " HD"
}

// ResolutionLabels returns the selector labels in the order they were received
func (vd *VideoDetails) ResolutionLabels() []string {
	if vd == nil {
		return nil
	}
	labels := make([]string, 0, len(vd.AvailableResolutions))
	for _, r := range vd.AvailableResolutions {
		labels = append(labels, r.Label())
	}
	return labels
}

// FindResolutionByLabel returns the resolution shown as label in a selector
func (vd *VideoDetails) FindResolutionByLabel(label string) (Resolution, bool) {
	if vd == nil {
		return Resolution{}, false
	}
	for _, r := range vd.AvailableResolutions {
		if r.Label() == label {
			return r, true
		}
	}
	return Resolution{}, false
}

// FormatDuration formats seconds as mm:ss, or hh:mm:ss when the video is an hour or longer
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / SecondsPerHour
	minutes := (seconds - hours*SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
