package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fn7/yt-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendEntry     *widget.Entry
	downloadDirEntry *widget.Entry
	modeSelect       *widget.Select
	strictCheck      *widget.Check
	tlsCheck         *widget.Check
	debugCheck       *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultBackendURL)

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.modeSelect = widget.NewSelect([]string{l.GetText(KeyModeLive), l.GetText(KeyModeDemo)}, nil)

	sd.strictCheck = widget.NewCheck(l.GetText(KeyStrictURLCheck), nil)
	sd.tlsCheck = widget.NewCheck(l.GetText(KeyTLSFingerprint), nil)
	sd.debugCheck = widget.NewCheck(l.GetText(KeyDebugLogging), nil)

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyBackendURL)),
		sd.backendEntry,

		widget.NewLabel(l.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyMode)),
		sd.modeSelect,
		sd.strictCheck,
		sd.tlsCheck,
		sd.debugCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendEntry.SetText(sd.settings.GetBackendURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.modeSelect.SetSelected(sd.modeLabel(sd.settings.GetMode()))
	sd.strictCheck.SetChecked(sd.settings.GetStrictURLCheck())
	sd.tlsCheck.SetChecked(sd.settings.GetTLSFingerprint())
	sd.debugCheck.SetChecked(sd.settings.GetDebugLogging())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) modeLabel(mode config.Mode) string {
	if mode == config.ModeDemo {
		return sd.localization.GetText(KeyModeDemo)
	}
	return sd.localization.GetText(KeyModeLive)
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func (sd *SettingsDialog) save() {
	sd.settings.SetBackendURL(sd.backendEntry.Text)

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	mode := config.ModeLive
	if sd.modeSelect.Selected == sd.localization.GetText(KeyModeDemo) {
		mode = config.ModeDemo
	}
	sd.settings.SetMode(mode)
	sd.settings.SetStrictURLCheck(sd.strictCheck.Checked)
	sd.settings.SetTLSFingerprint(sd.tlsCheck.Checked)
	sd.settings.SetDebugLogging(sd.debugCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
