package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent and badge colors
var (
	ColorAccent     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	ColorBadge      = color.RGBA{R: 0, G: 0, B: 0, A: 178} // black at 70%
	ColorBadgeText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorMutedLight = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	ColorMutedDark  = color.RGBA{R: 156, G: 163, B: 175, A: 255}
)

// CompactTheme keeps the default look with tighter spacing and a red accent
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameError:
		return color.RGBA{R: 185, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 22, G: 163, B: 74, A: 255}
	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantDark {
			return ColorMutedDark
		}
		return ColorMutedLight
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
