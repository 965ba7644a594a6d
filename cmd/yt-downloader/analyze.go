package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/model"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <url>",
		Short: "Show the title, duration, author and resolutions of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controller.NewFromOptions(opts)
			if err != nil {
				return err
			}

			if err := ctrl.SubmitURL(cmd.Context(), args[0]); err != nil {
				return formError(ctrl.State(), err)
			}

			printDetails(cmd.OutOrStdout(), ctrl.State().Details)
			return nil
		},
	}
}

// formError prefers the inline form message over the wrapped error
func formError(state model.FormState, err error) error {
	if state.HasError() {
		return errors.New(state.Error)
	}
	return err
}

func printDetails(w io.Writer, d *model.VideoDetails) {
	if d == nil {
		return
	}
	fmt.Fprintf(w, "Title:    %s\n", d.Title)
	fmt.Fprintf(w, "Author:   %s\n", d.Author)
	fmt.Fprintf(w, "Duration: %s\n", d.Duration)
	if d.Thumbnail != "" {
		fmt.Fprintf(w, "Thumb:    %s\n", d.Thumbnail)
	}
	fmt.Fprintln(w, "Resolutions:")
	for _, r := range d.AvailableResolutions {
		fmt.Fprintf(w, "  - %s\n", r.Name)
	}
}
