package config

import (
	"fyne.io/fyne/v2"

	"github.com/fn7/yt-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL     = "backend_url"
	KeyDownloadDir    = "download_directory"
	KeyMode           = "mode"
	KeyStrictURLCheck = "strict_url_check"
	KeyTLSFingerprint = "tls_fingerprint"
	KeyLanguage       = "app_language"
	KeyDebugLogging   = "debug_logging"
)

// DefaultLanguage follows the system locale
const DefaultLanguage = "system"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the backend base URL
func (s *Settings) GetBackendURL() string {
	return s.app.Preferences().StringWithFallback(KeyBackendURL, DefaultBackendURL)
}

// SetBackendURL sets the backend base URL
func (s *Settings) SetBackendURL(url string) {
	if url == "" {
		url = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, url)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMode returns live or demo
func (s *Settings) GetMode() Mode {
	switch mode := Mode(s.app.Preferences().String(KeyMode)); mode {
	case ModeLive, ModeDemo:
		return mode
	default:
		return DefaultMode
	}
}

// SetMode sets the backend mode
func (s *Settings) SetMode(mode Mode) {
	s.app.Preferences().SetString(KeyMode, string(mode))
}

// GetStrictURLCheck returns whether only YouTube links are accepted.
// Unset, it follows the mode: on in demo, off in live.
func (s *Settings) GetStrictURLCheck() bool {
	return s.app.Preferences().BoolWithFallback(KeyStrictURLCheck, s.GetMode() == ModeDemo)
}

// SetStrictURLCheck sets whether only YouTube links are accepted
func (s *Settings) SetStrictURLCheck(strict bool) {
	s.app.Preferences().SetBool(KeyStrictURLCheck, strict)
}

// GetTLSFingerprint returns whether backend calls use a browser TLS fingerprint
func (s *Settings) GetTLSFingerprint() bool {
	return s.app.Preferences().BoolWithFallback(KeyTLSFingerprint, DefaultTLSFingerprint)
}

// SetTLSFingerprint sets whether backend calls use a browser TLS fingerprint
func (s *Settings) SetTLSFingerprint(enabled bool) {
	s.app.Preferences().SetBool(KeyTLSFingerprint, enabled)
}

// GetDebugLogging returns whether debug logs are enabled
func (s *Settings) GetDebugLogging() bool {
	return s.app.Preferences().Bool(KeyDebugLogging)
}

// SetDebugLogging enables or disables debug logs
func (s *Settings) SetDebugLogging(enabled bool) {
	s.app.Preferences().SetBool(KeyDebugLogging, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Options returns the stored settings as validated Options
func (s *Settings) Options() (*Options, error) {
	opts := &Options{
		BackendURL:     s.GetBackendURL(),
		DownloadDir:    s.GetDownloadDirectory(),
		Demo:           s.GetMode() == ModeDemo,
		StrictURLCheck: s.GetStrictURLCheck(),
		TLSFingerprint: s.GetTLSFingerprint(),
		Debug:          s.GetDebugLogging(),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
