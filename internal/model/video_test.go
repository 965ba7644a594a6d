package model

import (
	"reflect"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-5, "00:00"},
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{642, "10:42"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
		{360000, "100:00:00"},
	}

	for _, test := range tests {
		result := FormatDuration(test.seconds)
		if result != test.expected {
			t.Errorf("FormatDuration(%d) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestVideoDetails_FindResolution(t *testing.T) {
	details := &VideoDetails{
		AvailableResolutions: []Resolution{
			{Name: "1080p", URL: "https://cdn/1080"},
			{Name: "720p", URL: "https://cdn/720"},
		},
	}

	tests := []struct {
		name      string
		details   *VideoDetails
		lookup    string
		wantURL   string
		wantFound bool
	}{
		{"existing entry", details, "720p", "https://cdn/720", true},
		{"missing entry", details, "480p", "", false},
		{"empty name", details, "", "", false},
		{"nil details", nil, "720p", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, found := tt.details.FindResolution(tt.lookup)
			if found != tt.wantFound {
				t.Fatalf("expected found=%v, got %v", tt.wantFound, found)
			}
			if r.URL != tt.wantURL {
				t.Errorf("expected URL %q, got %q", tt.wantURL, r.URL)
			}
		})
	}
}

func TestVideoDetails_ResolutionNames(t *testing.T) {
	details := &VideoDetails{
		AvailableResolutions: []Resolution{
			{Name: "360p"},
			{Name: "1080p"},
			{Name: "720p"},
		},
	}

	expected := []string{"360p", "1080p", "720p"}
	if got := details.ResolutionNames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("ResolutionNames() = %v, expected %v", got, expected)
	}

	var empty *VideoDetails
	if got := empty.ResolutionNames(); got != nil {
		t.Errorf("expected nil names for nil details, got %v", got)
	}
}

func TestParseFormatLabel(t *testing.T) {
	for _, f := range Formats() {
		got, ok := ParseFormatLabel(f.Label())
		if !ok || got != f {
			t.Errorf("ParseFormatLabel(%q) = %q, %v", f.Label(), got, ok)
		}
	}

	if _, ok := ParseFormatLabel("flac"); ok {
		t.Error("expected unknown label to be rejected")
	}
}

func TestResolution_Label(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"1080p", "1080p HD"},
		{"720p", "720p HD"},
		{"480p", "480p"},
		{"360p", "360p"},
		{"2160p", "2160p HD"},
		{"audio", "audio"},
		{"p", "p"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := (Resolution{Name: test.name}).Label(); got != test.expected {
				t.Errorf("Label() = %q, expected %q", got, test.expected)
			}
		})
	}
}

func TestVideoDetails_ResolutionLabels(t *testing.T) {
	details := &VideoDetails{
		AvailableResolutions: []Resolution{
			{Name: "1080p", URL: "https://cdn/1080"},
			{Name: "480p", URL: "https://cdn/480"},
		},
	}

	expected := []string{"1080p HD", "480p"}
	if got := details.ResolutionLabels(); !reflect.DeepEqual(got, expected) {
		t.Errorf("ResolutionLabels() = %v, expected %v", got, expected)
	}

	r, ok := details.FindResolutionByLabel("1080p HD")
	if !ok || r.URL != "https://cdn/1080" {
		t.Errorf("FindResolutionByLabel(1080p HD) = %v, %v", r, ok)
	}
	if _, ok := details.FindResolutionByLabel("1080p"); ok {
		t.Error("Raw names are not selector labels")
	}

	var nilDetails *VideoDetails
	if nilDetails.ResolutionLabels() != nil {
		t.Error("Nil details should have no labels")
	}
}
