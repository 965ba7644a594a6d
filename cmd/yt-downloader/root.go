package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fn7/yt-downloader/internal/config"
	"github.com/fn7/yt-downloader/internal/logging"
)

// opts is resolved by the root command before any subcommand runs
var opts *config.Options

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "yt-downloader",
		Short: "FN7 YouTube video downloader",
		Long: `yt-downloader resolves a YouTube URL through the downloader backend and
saves the chosen resolution as <title>.mp4.

Every flag can also be set with a YTDL_ environment variable (YTDL_BACKEND_URL,
YTDL_DOWNLOAD_DIR, ...) or in $HOME/yt-downloader.yaml.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			opts = loaded

			logging.Setup(os.Stderr, opts.Debug, opts.JSONLogs)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/yt-downloader.yaml)")
	flags.String("backend-url", config.DefaultBackendURL, "base URL of the downloader backend")
	flags.String("download-dir", "", "directory videos are saved into (default is ~/Downloads)")
	flags.Bool("strict-url", false, "accept youtube.com and youtu.be links only")
	flags.Bool("demo", false, "use the offline demo backend")
	flags.Bool("tls-fingerprint", false, "use a browser TLS fingerprint for backend calls")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("json", false, "output logs in JSON")

	cmd.AddCommand(newAnalyzeCmd(), newDownloadCmd())
	return cmd
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}
