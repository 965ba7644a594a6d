package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration sources for the CLI
const (
	EnvPrefix      = "YTDL"
	ConfigFileName = "yt-downloader"
	ConfigFileType = "yaml"
)

// Load resolves Options from flags, YTDL_* environment variables and an optional
// YAML config file, in that order of precedence. An explicit configFile must exist;
// the default $HOME/yt-downloader.yaml is optional.
func Load(flags *pflag.FlagSet, configFile string) (*Options, error) {
	v := viper.New()

	v.SetDefault("backend-url", DefaultBackendURL)
	v.SetDefault("tls-fingerprint", DefaultTLSFingerprint)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType(ConfigFileType)
		v.SetConfigName(ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logrus.WithField("file", v.ConfigFileUsed()).Debug("using config file")
	}

	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// The URL shape check is on by default in the demo
	if opts.Demo && !v.IsSet("strict-url") {
		opts.StrictURLCheck = true
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
