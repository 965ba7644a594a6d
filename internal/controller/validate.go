package controller

import (
	"errors"
	"strings"

	"mvdan.cc/xurls/v2"
)

// InvalidURLMessage is shown inline when the submitted URL is rejected
const InvalidURLMessage = "Please enter a valid YouTube URL"

// ErrInvalidURL is returned by SubmitURL when the input is rejected
var ErrInvalidURL = errors.New("invalid YouTube URL")

// YouTube URL fragments accepted by the strict check
var YouTubeURLMarkers = []string{"youtube.com/", "youtu.be/"}

// ValidateURL rejects empty input and, when strict, input that does not look like
// a YouTube link.
func ValidateURL(raw string, strict bool) error {
	if strings.TrimSpace(raw) == "" {
		return ErrInvalidURL
	}
	if strict && !IsYouTubeURL(raw) {
		return ErrInvalidURL
	}
	return nil
}

// IsYouTubeURL reports whether raw contains a youtube.com or youtu.be path
func IsYouTubeURL(raw string) bool {
	for _, marker := range YouTubeURLMarkers {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

var (
	strictURLs  = xurls.Strict()
	relaxedURLs = xurls.Relaxed()
)

// ExtractURL pulls the first link out of pasted text, preferring links with a
// scheme. Text without any link is returned trimmed.
func ExtractURL(text string) string {
	if u := strictURLs.FindString(text); u != "" {
		return u
	}
	if u := relaxedURLs.FindString(text); u != "" {
		return u
	}
	return strings.TrimSpace(text)
}
