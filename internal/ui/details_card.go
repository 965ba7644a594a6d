package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fn7/yt-downloader/internal/download"
	"github.com/fn7/yt-downloader/internal/model"
)

// DetailsCard shows the analyzed video with its format and quality selectors
type DetailsCard struct {
	localization *Localization

	// UI components
	thumbnail     *canvas.Image
	durationText  *canvas.Text
	titleLabel    *widget.Label
	authorLabel   *widget.Label
	formatLabel   *widget.Label
	qualityLabel  *widget.Label
	formatSelect  *widget.Select
	qualitySelect *widget.Select
	downloadBtn   *widget.Button
	progressBar   *widget.ProgressBar
	progressLabel *widget.Label
	progressRow   *fyne.Container
	savedLabel    *widget.Label
	revealBtn     *widget.Button
	openBtn       *widget.Button
	savedRow      *fyne.Container
	content       *fyne.Container

	savedPath string
	details   *model.VideoDetails

	// set while Update changes selectors so their OnChanged is not echoed back
	updating bool

	// Callbacks
	onFormat   func(model.Format)
	onQuality  func(name string)
	onDownload func()
	onReveal   func(filePath string)
	onOpen     func(filePath string)
}

// NewDetailsCard creates a hidden details card
func NewDetailsCard(localization *Localization) *DetailsCard {
	dc := &DetailsCard{localization: localization}
	dc.createUI()
	return dc
}

// SetCallbacks sets the action callbacks
func (dc *DetailsCard) SetCallbacks(
	onFormat func(model.Format),
	onQuality func(name string),
	onDownload func(),
	onReveal func(filePath string),
	onOpen func(filePath string),
) {
	dc.onFormat = onFormat
	dc.onQuality = onQuality
	dc.onDownload = onDownload
	dc.onReveal = onReveal
	dc.onOpen = onOpen
}

// Container returns the card's root object
func (dc *DetailsCard) Container() fyne.CanvasObject {
	return dc.content
}

func (dc *DetailsCard) createUI() {
	dc.thumbnail = canvas.NewImageFromResource(theme.FileVideoIcon())
	dc.thumbnail.FillMode = canvas.ImageFillContain
	dc.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	dc.durationText = canvas.NewText("", ColorBadgeText)
	dc.durationText.TextStyle = fyne.TextStyle{Monospace: true}
	badge := container.NewStack(canvas.NewRectangle(ColorBadge), container.NewPadded(dc.durationText))
	thumbnailStack := container.NewStack(
		dc.thumbnail,
		container.NewVBox(layout.NewSpacer(), container.NewHBox(layout.NewSpacer(), badge)),
	)

	dc.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	dc.titleLabel.Wrapping = fyne.TextWrapWord
	dc.authorLabel = widget.NewLabel("")
	dc.authorLabel.Importance = widget.LowImportance

	formatLabels := make([]string, 0, len(model.Formats()))
	for _, f := range model.Formats() {
		formatLabels = append(formatLabels, f.Label())
	}
	dc.formatLabel = widget.NewLabel("")
	dc.formatSelect = widget.NewSelect(formatLabels, dc.onFormatChanged)

	dc.qualityLabel = widget.NewLabel("")
	dc.qualitySelect = widget.NewSelect(nil, dc.onQualityChanged)

	info := container.NewVBox(
		dc.titleLabel,
		dc.authorLabel,
		dc.formatLabel,
		dc.formatSelect,
		dc.qualityLabel,
		dc.qualitySelect,
	)

	dc.downloadBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), func() {
		if dc.onDownload != nil {
			dc.onDownload()
		}
	})
	dc.downloadBtn.Importance = widget.HighImportance

	dc.progressBar = widget.NewProgressBar()
	dc.progressLabel = widget.NewLabel("")
	dc.progressRow = container.NewBorder(nil, nil, nil, dc.progressLabel, dc.progressBar)
	dc.progressRow.Hide()

	dc.savedLabel = widget.NewLabel("")
	dc.savedLabel.Truncation = fyne.TextTruncateEllipsis
	dc.revealBtn = widget.NewButton(IconFolder, func() {
		if dc.onReveal != nil && dc.savedPath != "" {
			dc.onReveal(dc.savedPath)
		}
	})
	dc.openBtn = widget.NewButton(IconPlay, func() {
		if dc.onOpen != nil && dc.savedPath != "" {
			dc.onOpen(dc.savedPath)
		}
	})
	dc.savedRow = container.NewBorder(nil, nil, nil, container.NewHBox(dc.revealBtn, dc.openBtn), dc.savedLabel)
	dc.savedRow.Hide()

	dc.content = container.NewVBox(
		widget.NewSeparator(),
		container.NewGridWithColumns(2, thumbnailStack, info),
		dc.downloadBtn,
		dc.progressRow,
		dc.savedRow,
	)
	dc.content.Hide()

	dc.RefreshTexts()
}

// RefreshTexts re-applies localized labels
func (dc *DetailsCard) RefreshTexts() {
	dc.formatLabel.SetText(dc.localization.GetText(KeyFormat))
	dc.qualityLabel.SetText(dc.localization.GetText(KeyQuality))
	dc.formatSelect.PlaceHolder = dc.localization.GetText(KeySelectFormat)
	dc.qualitySelect.PlaceHolder = dc.localization.GetText(KeySelectQuality)
	dc.formatSelect.Refresh()
	dc.qualitySelect.Refresh()
	dc.revealBtn.SetText(IconFolder + " " + dc.localization.GetText(KeyReveal))
	dc.openBtn.SetText(IconPlay + " " + dc.localization.GetText(KeyOpen))
}

// Update renders the form state. The card is hidden until details are loaded.
func (dc *DetailsCard) Update(state model.FormState) {
	d := state.Details
	if d == nil {
		dc.content.Hide()
		return
	}

	dc.details = d
	dc.titleLabel.SetText(d.Title)
	dc.authorLabel.SetText(dc.localization.Format(KeyByAuthor, d.Author))
	dc.durationText.Text = d.Duration
	dc.durationText.Refresh()

	dc.updating = true
	dc.qualitySelect.Options = d.ResolutionLabels()
	if state.SelectedResolutionName == "" {
		dc.qualitySelect.ClearSelected()
	} else if label := (model.Resolution{Name: state.SelectedResolutionName}).Label(); dc.qualitySelect.Selected != label {
		dc.qualitySelect.SetSelected(label)
	}
	dc.qualitySelect.Refresh()
	if label := state.SelectedFormat.Label(); dc.formatSelect.Selected != label {
		dc.formatSelect.SetSelected(label)
	}
	dc.updating = false

	if state.Downloading {
		dc.downloadBtn.SetText(dc.localization.GetText(KeyDownloading))
		dc.downloadBtn.Disable()
		dc.progressRow.Show()
	} else {
		dc.downloadBtn.SetText(dc.localization.GetText(KeyDownloadNow))
		dc.downloadBtn.Enable()
		dc.progressRow.Hide()
		dc.progressBar.SetValue(0)
		dc.progressLabel.SetText("")
	}

	dc.savedPath = state.SavedPath
	if state.SavedPath != "" {
		dc.savedLabel.SetText(dc.localization.Format(KeySavedTo, state.SavedPath))
		dc.savedRow.Show()
	} else {
		dc.savedRow.Hide()
	}

	dc.content.Show()
}

// SetThumbnail shows res, or the placeholder icon when res is nil
func (dc *DetailsCard) SetThumbnail(res fyne.Resource) {
	if res == nil {
		res = theme.FileVideoIcon()
	}
	dc.thumbnail.Resource = res
	dc.thumbnail.Refresh()
}

// SetProgress renders bytes written so far
func (dc *DetailsCard) SetProgress(written, total int64) {
	if frac := download.Fraction(written, total); frac >= 0 {
		dc.progressBar.SetValue(frac)
	}
	dc.progressLabel.SetText(download.FormatProgress(written, total))
}

func (dc *DetailsCard) onFormatChanged(label string) {
	if dc.updating || dc.onFormat == nil {
		return
	}
	if f, ok := model.ParseFormatLabel(label); ok {
		dc.onFormat(f)
	}
}

func (dc *DetailsCard) onQualityChanged(label string) {
	if dc.updating || dc.onQuality == nil {
		return
	}
	name := label
	if r, ok := dc.details.FindResolutionByLabel(label); ok {
		name = r.Name
	}
	dc.onQuality(name)
}
