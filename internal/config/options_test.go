package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantBackend string
		wantErr     bool
	}{
		{name: "defaults", opts: Options{}, wantBackend: DefaultBackendURL},
		{name: "trailing slash", opts: Options{BackendURL: " http://backend:9000/ "}, wantBackend: "http://backend:9000"},
		{name: "https", opts: Options{BackendURL: "https://api.example.com/v1"}, wantBackend: "https://api.example.com/v1"},
		{name: "no scheme", opts: Options{BackendURL: "api.example.com"}, wantErr: true},
		{name: "ftp", opts: Options{BackendURL: "ftp://api.example.com"}, wantErr: true},
		{name: "garbage", opts: Options{BackendURL: "not a url"}, wantErr: true},
		{name: "garbage in demo", opts: Options{BackendURL: "not a url", Demo: true}, wantBackend: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.DownloadDir = "/videos"
			err := opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBackendURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, opts.BackendURL)
			assert.Equal(t, "/videos", opts.DownloadDir)
		})
	}
}

func TestOptionsValidateDefaultDownloadDir(t *testing.T) {
	opts := Options{}
	require.NoError(t, opts.Validate())
	assert.NotEmpty(t, opts.DownloadDir)
}

func TestOptionsModeAndResolution(t *testing.T) {
	live := Options{}
	assert.Equal(t, ModeLive, live.Mode())
	assert.Empty(t, live.DefaultResolution())

	demo := Options{Demo: true}
	assert.Equal(t, ModeDemo, demo.Mode())
	assert.Equal(t, DemoResolution, demo.DefaultResolution())
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend-url", DefaultBackendURL, "")
	fs.String("download-dir", "", "")
	fs.Bool("demo", false, "")
	fs.Bool("strict-url", false, "")
	fs.Bool("tls-fingerprint", false, "")
	fs.Bool("debug", false, "")
	fs.Bool("json", false, "")
	return fs
}

func TestLoadFromFlags(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--backend-url", "http://backend:9000", "--download-dir", "/videos", "--debug"}))

	opts, err := Load(fs, writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000", opts.BackendURL)
	assert.Equal(t, "/videos", opts.DownloadDir)
	assert.True(t, opts.Debug)
	assert.False(t, opts.Demo)
	assert.False(t, opts.StrictURLCheck)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("YTDL_BACKEND_URL", "https://env.example.com")
	t.Setenv("YTDL_TLS_FINGERPRINT", "true")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--download-dir", "/videos"}))

	opts, err := Load(fs, writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", opts.BackendURL)
	assert.True(t, opts.TLSFingerprint)
}

func TestLoadFromConfigFile(t *testing.T) {
	path := writeConfig(t, "backend-url: https://file.example.com\ndownload-dir: /from/file\njson: true\n")

	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	opts, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", opts.BackendURL)
	assert.Equal(t, "/from/file", opts.DownloadDir)
	assert.True(t, opts.JSONLogs)
}

func TestLoadDemoEnablesStrictURLCheck(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		strict bool
	}{
		{name: "demo default", args: []string{"--demo"}, strict: true},
		{name: "demo explicit off", args: []string{"--demo", "--strict-url=false"}, strict: false},
		{name: "live explicit on", args: []string{"--strict-url"}, strict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlagSet()
			require.NoError(t, fs.Parse(append(tt.args, "--download-dir", "/videos")))

			opts, err := Load(fs, writeConfig(t, ""))
			require.NoError(t, err)
			assert.Equal(t, tt.strict, opts.StrictURLCheck)
		})
	}
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))

	_, err := Load(fs, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidBackend(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--backend-url", "nope"}))

	_, err := Load(fs, writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidBackendURL)
}

// writeConfig writes a YAML config into a temp dir so tests never read the user's file
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	if content == "" {
		content = "# no settings\n"
	}
	path := filepath.Join(t.TempDir(), ConfigFileName+"."+ConfigFileType)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
