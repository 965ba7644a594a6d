package ui

import (
	"fmt"

	"github.com/fn7/yt-downloader/internal/controller"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySubtitle          = "subtitle"
	KeyCardTitle         = "card_title"
	KeyCardDescription   = "card_description"
	KeyEnterURL          = "enter_url"
	KeyPaste             = "paste"
	KeyAnalyze           = "analyze"
	KeyAnalyzing         = "analyzing"
	KeyInvalidYouTubeURL = "invalid_youtube_url"
	KeyByAuthor          = "by_author"
	KeyFormat            = "format"
	KeySelectFormat      = "select_format"
	KeyQuality           = "quality"
	KeySelectQuality     = "select_quality"
	KeyDownloadNow       = "download_now"
	KeyDownloading       = "downloading"
	KeySavedTo           = "saved_to"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyDemoNotice        = "demo_notice"
	KeyDemoNoDownloads   = "demo_no_downloads"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBackendURL        = "backend_url"
	KeyDownloadDirectory = "download_directory"
	KeyMode              = "mode"
	KeyModeLive          = "mode_live"
	KeyModeDemo          = "mode_demo"
	KeyStrictURLCheck    = "strict_url_check"
	KeyTLSFingerprint    = "tls_fingerprint"
	KeyDebugLogging      = "debug_logging"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidSettings   = "invalid_settings"
	KeyErrorOpeningFile  = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// FormError translates an inline form message. Unknown messages are shown as is.
func (l *Localization) FormError(message string) string {
	if message == controller.InvalidURLMessage {
		return l.GetText(KeyInvalidYouTubeURL)
	}
	return message
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "FN7 YouTube Video Downloader",
		KeySubtitle:          "Enter a YouTube URL to download videos in various formats",
		KeyCardTitle:         "Download YouTube Video",
		KeyCardDescription:   "Paste the YouTube video URL and click \"Analyze\" to get download options",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyPaste:             "Paste",
		KeyAnalyze:           "Analyze",
		KeyAnalyzing:         "Analyzing",
		KeyInvalidYouTubeURL: "Please enter a valid YouTube URL",
		KeyByAuthor:          "By %s",
		KeyFormat:            "Format",
		KeySelectFormat:      "Select format",
		KeyQuality:           "Quality",
		KeySelectQuality:     "Select quality",
		KeyDownloadNow:       "Download Now",
		KeyDownloading:       "Downloading...",
		KeySavedTo:           "Saved to %s",
		KeyReveal:            "Show in folder",
		KeyOpen:              "Open",
		KeyDemoNotice:        "This is a demo interface only",
		KeyDemoNoDownloads:   "No videos are actually downloaded",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBackendURL:        "Backend URL",
		KeyDownloadDirectory: "Download Directory",
		KeyMode:              "Mode",
		KeyModeLive:          "Live backend",
		KeyModeDemo:          "Demo (offline)",
		KeyStrictURLCheck:    "Accept YouTube links only",
		KeyTLSFingerprint:    "Browser TLS fingerprint",
		KeyDebugLogging:      "Debug logging",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidSettings:   "Invalid settings",
		KeyErrorOpeningFile:  "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "FN7 Загрузчик видео YouTube",
		KeySubtitle:          "Введите URL YouTube, чтобы скачать видео в разных форматах",
		KeyCardTitle:         "Скачать видео YouTube",
		KeyCardDescription:   "Вставьте ссылку на видео и нажмите «Анализ», чтобы увидеть варианты загрузки",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyPaste:             "Вставить",
		KeyAnalyze:           "Анализ",
		KeyAnalyzing:         "Анализ...",
		KeyInvalidYouTubeURL: "Пожалуйста, введите корректный URL YouTube",
		KeyByAuthor:          "Автор: %s",
		KeyFormat:            "Формат",
		KeySelectFormat:      "Выберите формат",
		KeyQuality:           "Качество",
		KeySelectQuality:     "Выберите качество",
		KeyDownloadNow:       "Скачать",
		KeyDownloading:       "Загрузка...",
		KeySavedTo:           "Сохранено в %s",
		KeyReveal:            "Показать в папке",
		KeyOpen:              "Открыть",
		KeyDemoNotice:        "Это только демонстрационный интерфейс",
		KeyDemoNoDownloads:   "Видео на самом деле не скачиваются",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyBackendURL:        "URL сервера",
		KeyDownloadDirectory: "Папка загрузки",
		KeyMode:              "Режим",
		KeyModeLive:          "Сервер",
		KeyModeDemo:          "Демо (офлайн)",
		KeyStrictURLCheck:    "Принимать только ссылки YouTube",
		KeyTLSFingerprint:    "TLS-отпечаток браузера",
		KeyDebugLogging:      "Отладочные логи",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidSettings:   "Неверные настройки",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "FN7 Baixador de Vídeos do YouTube",
		KeySubtitle:          "Digite uma URL do YouTube para baixar vídeos em vários formatos",
		KeyCardTitle:         "Baixar Vídeo do YouTube",
		KeyCardDescription:   "Cole a URL do vídeo e clique em \"Analisar\" para ver as opções de download",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyPaste:             "Colar",
		KeyAnalyze:           "Analisar",
		KeyAnalyzing:         "Analisando",
		KeyInvalidYouTubeURL: "Por favor, digite uma URL do YouTube válida",
		KeyByAuthor:          "Por %s",
		KeyFormat:            "Formato",
		KeySelectFormat:      "Selecione o formato",
		KeyQuality:           "Qualidade",
		KeySelectQuality:     "Selecione a qualidade",
		KeyDownloadNow:       "Baixar Agora",
		KeyDownloading:       "Baixando...",
		KeySavedTo:           "Salvo em %s",
		KeyReveal:            "Mostrar na pasta",
		KeyOpen:              "Abrir",
		KeyDemoNotice:        "Esta é apenas uma interface de demonstração",
		KeyDemoNoDownloads:   "Nenhum vídeo é realmente baixado",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyBackendURL:        "URL do Servidor",
		KeyDownloadDirectory: "Diretório de Download",
		KeyMode:              "Modo",
		KeyModeLive:          "Servidor",
		KeyModeDemo:          "Demonstração (offline)",
		KeyStrictURLCheck:    "Aceitar apenas links do YouTube",
		KeyTLSFingerprint:    "Impressão TLS de navegador",
		KeyDebugLogging:      "Logs de depuração",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidSettings:   "Configurações inválidas",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
