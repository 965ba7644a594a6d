package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/fn7/yt-downloader/internal/backend"
	"github.com/fn7/yt-downloader/internal/config"
	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/download"
	"github.com/fn7/yt-downloader/internal/logging"
	"github.com/fn7/yt-downloader/internal/model"
	"github.com/fn7/yt-downloader/internal/platform"
)

// FormController is the part of the form controller the window drives
type FormController interface {
	SetURL(url string)
	SubmitURL(ctx context.Context, url string) error
	SelectResolution(name string)
	SelectFormat(format model.Format)
	DownloadSelected(ctx context.Context) (string, error)
	State() model.FormState
	SetUpdateCallback(func(model.FormState))
	SetProgressCallback(download.ProgressFunc)
}

// ControllerFactory builds a controller for the given options
type ControllerFactory func(opts *config.Options) (FormController, error)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	factory      ControllerFactory
	thumbnails   *ThumbnailLoader

	ctrl FormController
	opts *config.Options

	// UI components
	titleLabel      *widget.Label
	subtitleLabel   *widget.Label
	cardTitleLabel  *widget.Label
	cardDescLabel   *widget.Label
	urlEntry        *widget.Entry
	pasteBtn        *widget.Button
	analyzeBtn      *widget.Button
	spinner         *widget.ProgressBarInfinite
	errorLabel      *widget.Label
	details         *DetailsCard
	demoNoticeLabel *widget.Label
	demoNoDlLabel   *widget.Label
	footer          *fyne.Container

	// set while render writes widgets whose callbacks feed the controller
	rendering     bool
	lastThumbnail string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, factory ControllerFactory) (*RootUI, error) {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	thumbClient, err := backend.NewHTTPClient(backend.TransportOptions{Timeout: ThumbnailTimeout})
	if err != nil {
		return nil, err
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		factory:      factory,
		thumbnails:   NewThumbnailLoader(thumbClient),
	}

	ui.setupUI()
	if err := ui.reload(); err != nil {
		// A stored backend URL can be invalid; start with the default one instead
		logrus.WithError(err).Warn("stored settings rejected, resetting backend url")
		settings.SetBackendURL(config.DefaultBackendURL)
		if err := ui.reload(); err != nil {
			return nil, err
		}
	}
	return ui, nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logo.FillMode = canvas.ImageFillContain

	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.subtitleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	ui.subtitleLabel.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, logo, settingsBtn,
		container.NewVBox(ui.titleLabel, ui.subtitleLabel))

	ui.cardTitleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.cardDescLabel = widget.NewLabel("")
	ui.cardDescLabel.Wrapping = fyne.TextWrapWord
	ui.cardDescLabel.Importance = widget.LowImportance

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnChanged = func(text string) {
		if !ui.rendering && ui.ctrl != nil {
			ui.ctrl.SetURL(text)
		}
	}
	// Submit when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onAnalyzeClick()
	}

	ui.pasteBtn = widget.NewButtonWithIcon("", theme.ContentPasteIcon(), ui.onPasteClick)
	ui.analyzeBtn = widget.NewButton("", ui.onAnalyzeClick)
	ui.analyzeBtn.Importance = widget.HighImportance

	urlRow := container.NewBorder(nil, nil, nil, container.NewHBox(ui.pasteBtn, ui.analyzeBtn), ui.urlEntry)

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.details = NewDetailsCard(ui.localization)
	ui.details.SetCallbacks(
		ui.onFormatSelected,
		ui.onQualitySelected,
		ui.onDownloadClick,
		ui.onRevealFile,
		ui.onOpenFile,
	)

	card := container.NewVBox(
		ui.cardTitleLabel,
		ui.cardDescLabel,
		urlRow,
		ui.spinner,
		ui.errorLabel,
		ui.details.Container(),
	)

	ui.demoNoticeLabel = widget.NewLabel("")
	ui.demoNoticeLabel.Importance = widget.LowImportance
	ui.demoNoDlLabel = widget.NewLabel("")
	ui.demoNoDlLabel.Importance = widget.LowImportance
	ui.footer = container.NewBorder(nil, nil, ui.demoNoticeLabel, ui.demoNoDlLabel)
	ui.footer.Hide()

	content := container.NewBorder(
		header,
		ui.footer,
		nil,
		nil,
		container.NewVScroll(container.NewPadded(card)),
	)

	ui.window.SetContent(content)
	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
	if ui.ctrl != nil {
		ui.render(ui.ctrl.State())
	}
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.titleLabel.SetText(l.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(l.GetText(KeySubtitle))
	ui.cardTitleLabel.SetText(l.GetText(KeyCardTitle))
	ui.cardDescLabel.SetText(l.GetText(KeyCardDescription))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.pasteBtn.SetText(l.GetText(KeyPaste))
	ui.demoNoticeLabel.SetText(l.GetText(KeyDemoNotice))
	ui.demoNoDlLabel.SetText(l.GetText(KeyDemoNoDownloads))
	ui.details.RefreshTexts()
}

// reload rebuilds the controller from the stored settings
func (ui *RootUI) reload() error {
	opts, err := ui.settings.Options()
	if err != nil {
		return err
	}
	logging.Setup(nil, opts.Debug, false)

	ctrl, err := ui.factory(opts)
	if err != nil {
		return err
	}

	// Keep what the user typed across a settings change, then detach the old
	// controller so a request still in flight cannot render into the window
	if old := ui.ctrl; old != nil {
		ctrl.SetURL(old.State().URL)
		old.SetUpdateCallback(nil)
		old.SetProgressCallback(nil)
	}

	ctrl.SetUpdateCallback(ui.stateObserver(ctrl))
	ctrl.SetProgressCallback(ui.progressObserver(ctrl))
	ui.ctrl = ctrl
	ui.opts = opts
	ui.lastThumbnail = ""

	if opts.Demo {
		ui.footer.Show()
	} else {
		ui.footer.Hide()
	}

	logrus.WithField("mode", opts.Mode()).Info("form ready")
	ui.render(ctrl.State())
	return nil
}

// stateObserver receives snapshots of ctrl from any goroutine. Snapshots are
// dropped once ctrl is no longer the active controller.
func (ui *RootUI) stateObserver(ctrl FormController) func(model.FormState) {
	return func(state model.FormState) {
		fyne.Do(func() {
			if ui.ctrl != ctrl {
				return
			}
			ui.render(state)
		})
	}
}

func (ui *RootUI) progressObserver(ctrl FormController) download.ProgressFunc {
	return func(written, total int64) {
		fyne.Do(func() {
			if ui.ctrl != ctrl {
				return
			}
			ui.details.SetProgress(written, total)
		})
	}
}

// render applies a form snapshot to the widgets. Must run on the UI thread.
func (ui *RootUI) render(state model.FormState) {
	ui.rendering = true
	defer func() { ui.rendering = false }()

	if ui.urlEntry.Text != state.URL {
		ui.urlEntry.SetText(state.URL)
	}

	if state.Loading {
		ui.analyzeBtn.SetText(ui.localization.GetText(KeyAnalyzing))
		ui.analyzeBtn.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.analyzeBtn.SetText(ui.localization.GetText(KeyAnalyze))
		ui.analyzeBtn.Enable()
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	if state.HasError() {
		ui.errorLabel.SetText(ui.localization.FormError(state.Error))
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}

	ui.details.Update(state)
	ui.updateThumbnail(state.Details)
}

// updateThumbnail loads the preview once per distinct thumbnail URL
func (ui *RootUI) updateThumbnail(details *model.VideoDetails) {
	if details == nil {
		ui.lastThumbnail = ""
		return
	}
	if details.Thumbnail == ui.lastThumbnail {
		return
	}

	thumbURL := details.Thumbnail
	ui.lastThumbnail = thumbURL
	ui.details.SetThumbnail(nil)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ThumbnailTimeout)
		defer cancel()

		res, err := ui.thumbnails.Load(ctx, thumbURL)
		if err != nil {
			if !errors.Is(err, ErrNoThumbnail) {
				logrus.WithError(err).WithField("thumbnail", thumbURL).Warn("failed to load thumbnail")
			}
			return
		}

		fyne.Do(func() {
			if ui.lastThumbnail == thumbURL {
				ui.details.SetThumbnail(res)
			}
		})
	}()
}

// onAnalyzeClick submits the URL field
func (ui *RootUI) onAnalyzeClick() {
	ctrl := ui.ctrl
	text := ui.urlEntry.Text

	go func() {
		err := ctrl.SubmitURL(context.Background(), text)
		if err != nil && !errors.Is(err, controller.ErrInvalidURL) {
			logrus.WithError(err).Debug("analyze finished without details")
		}
	}()
}

// onPasteClick fills the URL field with the link found in the clipboard
func (ui *RootUI) onPasteClick() {
	text := ui.app.Clipboard().Content()
	if text == "" {
		return
	}
	ui.urlEntry.SetText(controller.ExtractURL(text))
}

func (ui *RootUI) onFormatSelected(format model.Format) {
	if !ui.rendering {
		ui.ctrl.SelectFormat(format)
	}
}

func (ui *RootUI) onQualitySelected(name string) {
	if !ui.rendering {
		ui.ctrl.SelectResolution(name)
	}
}

// onDownloadClick downloads the selected quality in the background
func (ui *RootUI) onDownloadClick() {
	ctrl := ui.ctrl

	go func() {
		if _, err := ctrl.DownloadSelected(context.Background()); err != nil {
			logrus.WithError(err).Debug("download finished without a file")
		}
	}()
}

// onRevealFile handles revealing a file in file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		logrus.WithError(err).WithField("path", filePath).Warn("failed to reveal file")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)), ui.window)
	}
}

// onOpenFile handles opening a file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		logrus.WithError(err).WithField("path", filePath).Warn("failed to open file")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)), ui.window)
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	if err := ui.reload(); err != nil {
		logrus.WithError(err).Error("failed to apply settings")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyInvalidSettings), err), ui.window)
		return
	}
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}
