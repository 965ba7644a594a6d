package ui

// Package ui contains the Fyne-based desktop window for the downloader. It renders
// the download form held by the controller: URL entry, video details card with
// format and quality selectors, download progress, and settings. All UI strings
// are localized via Localization.
