package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoResponseToDetailsDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		expected string
	}{
		{"whole seconds", 642, "10:42"},
		{"fractional is truncated", 642.9, "10:42"},
		{"hours", 3661, "01:01:01"},
		{"zero", 0, "00:00"},
		{"negative", -30, "00:00"},
		{"too large is clamped", 1e20, "596523:14:07"},
		{"too small is clamped", -1e20, "00:00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := &VideoResponse{Duration: test.duration}
			assert.Equal(t, test.expected, resp.ToDetails().Duration)
		})
	}
}
