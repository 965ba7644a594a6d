package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/fn7/yt-downloader/internal/platform"
)

// Mode selects the backend used by the form
type Mode string

const (
	// ModeLive talks to the backend over HTTP
	ModeLive Mode = "live"

	// ModeDemo uses the offline simulated backend
	ModeDemo Mode = "demo"
)

// Defaults shared by the desktop settings and the CLI
const (
	DefaultBackendURL     = "http://localhost:8000"
	DefaultMode           = ModeLive
	DemoResolution        = "720p"
	FallbackDownloadDir   = "/tmp/downloads"
	DefaultTLSFingerprint = false
)

// ErrInvalidBackendURL is returned by Validate for a malformed backend URL
var ErrInvalidBackendURL = errors.New("backend url must be an absolute http or https url")

// Options is the resolved configuration used to build the form controller.
// The mapstructure tags match the CLI flag names.
type Options struct {
	BackendURL     string `mapstructure:"backend-url"`
	DownloadDir    string `mapstructure:"download-dir"`
	Demo           bool   `mapstructure:"demo"`
	StrictURLCheck bool   `mapstructure:"strict-url"`
	TLSFingerprint bool   `mapstructure:"tls-fingerprint"`
	Debug          bool   `mapstructure:"debug"`
	JSONLogs       bool   `mapstructure:"json"`
}

// Mode returns the backend mode selected by Demo
func (o *Options) Mode() Mode {
	if o.Demo {
		return ModeDemo
	}
	return ModeLive
}

// DefaultResolution returns the quality preselected after a load.
// Only the demo preselects one.
func (o *Options) DefaultResolution() string {
	if o.Demo {
		return DemoResolution
	}
	return ""
}

// Validate fills defaults and checks the backend URL. The backend URL is only
// required to be valid in live mode.
func (o *Options) Validate() error {
	o.BackendURL = strings.TrimRight(strings.TrimSpace(o.BackendURL), "/")
	if o.BackendURL == "" {
		o.BackendURL = DefaultBackendURL
	}
	if !o.Demo {
		if err := validateBackendURL(o.BackendURL); err != nil {
			return err
		}
	}

	o.DownloadDir = strings.TrimSpace(o.DownloadDir)
	if o.DownloadDir == "" {
		dir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			dir = FallbackDownloadDir
		}
		o.DownloadDir = dir
	}
	o.DownloadDir = platform.ExpandHome(o.DownloadDir)

	return nil
}

func validateBackendURL(raw string) error {
	if !govalidator.IsURL(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidBackendURL, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrInvalidBackendURL, raw)
	}
	return nil
}
