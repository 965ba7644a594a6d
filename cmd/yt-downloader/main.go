// Command yt-downloader drives the download form from the terminal: analyze a
// video URL and download one of its resolutions through the backend.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
