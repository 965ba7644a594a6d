package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconPlay     = "▶"
)

// Layout sizing
const (
	LogoSize float32 = 32

	// 16:9 thumbnail
	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Timeouts
const (
	ThumbnailTimeout = 15 * time.Second
)
