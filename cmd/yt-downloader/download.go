package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/download"
	"github.com/fn7/yt-downloader/internal/model"
	"github.com/fn7/yt-downloader/internal/platform"
)

func newDownloadCmd() *cobra.Command {
	var (
		quality string
		format  string
		reveal  bool
	)

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a video and save it as <title>.mp4",
		Long: `Download analyzes the URL, selects the --quality resolution and saves the
backend's payload into the download directory. Without --quality the demo's default
is used, or the first resolution the backend offers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controller.NewFromOptions(opts)
			if err != nil {
				return err
			}

			if err := ctrl.SubmitURL(cmd.Context(), args[0]); err != nil {
				return formError(ctrl.State(), err)
			}

			state := ctrl.State()
			if quality != "" {
				ctrl.SelectResolution(quality)
			} else if state.SelectedResolutionName == "" && state.Details != nil && len(state.Details.AvailableResolutions) > 0 {
				ctrl.SelectResolution(state.Details.AvailableResolutions[0].Name)
			}

			if format != "" {
				f, ok := model.ParseFormatLabel(format)
				if !ok {
					return fmt.Errorf("unknown format %q", format)
				}
				ctrl.SelectFormat(f)
			}

			if _, ok := ctrl.State().Details.FindResolution(ctrl.State().SelectedResolutionName); !ok {
				logrus.WithField("quality", ctrl.State().SelectedResolutionName).Warn("quality not offered by this video")
			}

			var progress *progressLine
			if term.IsTerminal(int(os.Stderr.Fd())) {
				progress = &progressLine{w: os.Stderr}
				ctrl.SetProgressCallback(progress.update)
			}

			path, err := ctrl.DownloadSelected(cmd.Context())
			if progress != nil {
				progress.finish()
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			if reveal {
				if err := platform.OpenFileInManager(path); err != nil {
					logrus.WithError(err).Warn("failed to reveal file")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "", "resolution name to download, e.g. 720p")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format: mp4, mp3 or webm")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "show the saved file in the file manager")

	return cmd
}

// progressLine redraws a single progress line on w
type progressLine struct {
	w     io.Writer
	drawn bool
}

func (p *progressLine) update(written, total int64) {
	line := download.FormatProgress(written, total)
	if frac := download.Fraction(written, total); frac >= 0 {
		line = fmt.Sprintf("%3.0f%%  %s", frac*100, line)
	}
	fmt.Fprintf(p.w, "\r\033[K%s", line)
	p.drawn = true
}

// finish ends a drawn line so the next output starts on its own line
func (p *progressLine) finish() {
	if p.drawn {
		fmt.Fprintln(p.w)
		p.drawn = false
	}
}
