package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/fn7/yt-downloader/internal/config"
	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/logging"
	"github.com/fn7/yt-downloader/internal/platform"
	"github.com/fn7/yt-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fn7.yt-downloader"
	AppName = "FN7 YouTube Video Downloader"

	WindowWidth  = 820
	WindowHeight = 680
)

func main() {
	logging.Setup(os.Stderr, false, false)
	logrus.WithField("version", version).Info("starting " + AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myApp.SetIcon(ui.LoadLogoResource())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		logrus.WithError(err).Warn("failed to ensure downloads dir")
	}

	factory := func(opts *config.Options) (ui.FormController, error) {
		return controller.NewFromOptions(opts)
	}

	if _, err := ui.NewRootUI(myWindow, myApp, settings, factory); err != nil {
		logrus.WithError(err).Fatal("failed to create window")
	}

	myWindow.ShowAndRun()
}
