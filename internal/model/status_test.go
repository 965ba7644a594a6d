package model

import "testing"

func TestFormStatus_IsBusy(t *testing.T) {
	tests := []struct {
		status   FormStatus
		expected bool
	}{
		{FormStatusIdle, false},
		{FormStatusLoading, true},
		{FormStatusLoaded, false},
		{FormStatusDownloading, true},
	}

	for _, test := range tests {
		result := test.status.IsBusy()
		if result != test.expected {
			t.Errorf("FormStatus(%s).IsBusy() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFormStatus_CanDownload(t *testing.T) {
	tests := []struct {
		status   FormStatus
		expected bool
	}{
		{FormStatusIdle, false},
		{FormStatusLoading, false},
		{FormStatusLoaded, true},
		{FormStatusDownloading, false},
	}

	for _, test := range tests {
		result := test.status.CanDownload()
		if result != test.expected {
			t.Errorf("FormStatus(%s).CanDownload() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFormStatus_String(t *testing.T) {
	status := FormStatusDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("FormStatus.String() = %s, expected %s", result, expected)
	}
}

func TestFormState_Status(t *testing.T) {
	details := &VideoDetails{Title: "t"}

	tests := []struct {
		name     string
		state    FormState
		expected FormStatus
	}{
		{"empty form", FormState{}, FormStatusIdle},
		{"error without details", FormState{Error: "bad"}, FormStatusIdle},
		{"loading", FormState{Loading: true}, FormStatusLoading},
		{"loaded", FormState{Details: details}, FormStatusLoaded},
		{"downloading wins over details", FormState{Details: details, Downloading: true}, FormStatusDownloading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Status(); got != tt.expected {
				t.Errorf("Status() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestFormState_Clone(t *testing.T) {
	original := FormState{
		URL: "https://youtu.be/abc",
		Details: &VideoDetails{
			Title:                "Original",
			AvailableResolutions: []Resolution{{Name: "720p", URL: "u"}},
		},
	}

	clone := original.Clone()
	clone.Details.Title = "Changed"
	clone.Details.AvailableResolutions[0].Name = "1080p"

	if original.Details.Title != "Original" {
		t.Errorf("clone shares details with original")
	}
	if original.Details.AvailableResolutions[0].Name != "720p" {
		t.Errorf("clone shares resolutions with original")
	}
}
