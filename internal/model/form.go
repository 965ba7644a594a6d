package model

// FormState is a snapshot of the download form
type FormState struct {
	URL                    string
	SelectedResolutionName string
	SelectedFormat         Format
	Loading                bool
	Downloading            bool
	Error                  string        // inline validation message, empty if none
	Details                *VideoDetails // nil until a metadata fetch succeeds
	SavedPath              string        // path of the last saved file
}

// Status derives the form status from the flags and details
func (fs FormState) Status() FormStatus {
	switch {
	case fs.Downloading:
		return FormStatusDownloading
	case fs.Loading:
		return FormStatusLoading
	case fs.Details != nil:
		return FormStatusLoaded
	default:
		return FormStatusIdle
	}
}

// HasError reports whether an inline message should be shown
func (fs FormState) HasError() bool {
	return fs.Error != ""
}

// Clone returns a copy that does not share the details or resolution slice
func (fs FormState) Clone() FormState {
	out := fs
	if fs.Details != nil {
		d := *fs.Details
		d.AvailableResolutions = append([]Resolution(nil), fs.Details.AvailableResolutions...)
		out.Details = &d
	}
	return out
}
