package model

// FormStatus represents the derived state of the download form
type FormStatus string

const (
	// FormStatusIdle means nothing has been analyzed yet, or the last analysis failed
	FormStatusIdle FormStatus = "Idle"

	// FormStatusLoading means a metadata request is in flight
	FormStatusLoading FormStatus = "Loading"

	// FormStatusLoaded means video details are available for download
	FormStatusLoaded FormStatus = "Loaded"

	// FormStatusDownloading means a download request is in flight
	FormStatusDownloading FormStatus = "Downloading"
)

// String returns the string representation of FormStatus
func (fs FormStatus) String() string {
	return string(fs)
}

// IsBusy returns true while a network call is pending
func (fs FormStatus) IsBusy() bool {
	return fs == FormStatusLoading || fs == FormStatusDownloading
}

// CanDownload returns true if the form holds details that can be downloaded
func (fs FormStatus) CanDownload() bool {
	return fs == FormStatusLoaded
}
