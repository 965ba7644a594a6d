package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "yt-downloader.png"
)

// LoadLogoResource loads the logo next to the binary, falling back to the
// theme's download icon when the file is missing.
func LoadLogoResource() fyne.Resource {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res
	}
	return theme.DownloadIcon()
}
