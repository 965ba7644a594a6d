package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/fn7/yt-downloader/internal/config"
	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/download"
	"github.com/fn7/yt-downloader/internal/model"
)

// stubController records calls and returns a fixed state
type stubController struct {
	state      model.FormState
	urls       []string
	resolution string
	format     model.Format
	onUpdate   func(model.FormState)
	onProgress download.ProgressFunc
}

func (s *stubController) SetURL(url string) { s.urls = append(s.urls, url) }
func (s *stubController) SubmitURL(context.Context, string) error {
	return nil
}
func (s *stubController) SelectResolution(name string)     { s.resolution = name }
func (s *stubController) SelectFormat(format model.Format) { s.format = format }
func (s *stubController) DownloadSelected(context.Context) (string, error) {
	return "", nil
}
func (s *stubController) State() model.FormState                   { return s.state }
func (s *stubController) SetUpdateCallback(fn func(model.FormState)) { s.onUpdate = fn }
func (s *stubController) SetProgressCallback(fn download.ProgressFunc) {
	s.onProgress = fn
}

func newTestRoot(t *testing.T, demo bool) (*RootUI, *stubController) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	if demo {
		settings.SetMode(config.ModeDemo)
	}

	stub := &stubController{}
	ui, err := NewRootUI(test.NewWindow(nil), app, settings, func(*config.Options) (FormController, error) {
		return stub, nil
	})
	if err != nil {
		t.Fatalf("NewRootUI failed: %v", err)
	}
	return ui, stub
}

func TestRootUIInitialState(t *testing.T) {
	ui, _ := newTestRoot(t, false)

	if ui.analyzeBtn.Text != "Analyze" || ui.analyzeBtn.Disabled() {
		t.Errorf("Analyze button should be enabled, got %q", ui.analyzeBtn.Text)
	}
	if ui.errorLabel.Visible() {
		t.Error("Error should be hidden initially")
	}
	if ui.footer.Visible() {
		t.Error("Demo footer should be hidden in live mode")
	}
	if ui.details.Container().Visible() {
		t.Error("Details should be hidden initially")
	}
}

func TestRootUIDemoFooter(t *testing.T) {
	ui, _ := newTestRoot(t, true)

	if !ui.footer.Visible() {
		t.Error("Demo footer should be visible in demo mode")
	}
	if ui.demoNoticeLabel.Text != "This is a demo interface only" {
		t.Errorf("Unexpected notice %q", ui.demoNoticeLabel.Text)
	}
}

func TestRootUIRenderLoadingAndError(t *testing.T) {
	ui, stub := newTestRoot(t, false)

	ui.render(model.FormState{URL: "https://youtu.be/abc", Loading: true})
	if ui.analyzeBtn.Text != "Analyzing" || !ui.analyzeBtn.Disabled() {
		t.Errorf("Analyze button should show 'Analyzing' and be disabled, got %q", ui.analyzeBtn.Text)
	}
	if !ui.spinner.Visible() {
		t.Error("Spinner should be visible while loading")
	}
	if ui.urlEntry.Text != "https://youtu.be/abc" {
		t.Errorf("URL entry should follow the state, got %q", ui.urlEntry.Text)
	}
	if len(stub.urls) != 0 {
		t.Errorf("Rendering must not feed the URL back to the controller, got %v", stub.urls)
	}

	ui.render(model.FormState{Error: controller.InvalidURLMessage})
	if !ui.errorLabel.Visible() || ui.errorLabel.Text != "Please enter a valid YouTube URL" {
		t.Errorf("Expected inline error, got %q", ui.errorLabel.Text)
	}
	if ui.analyzeBtn.Disabled() {
		t.Error("Analyze button should be enabled after loading")
	}
}

func TestRootUIEditsReachController(t *testing.T) {
	ui, stub := newTestRoot(t, false)

	test.Type(ui.urlEntry, "x")
	if len(stub.urls) == 0 || stub.urls[len(stub.urls)-1] != "x" {
		t.Errorf("Typing should update the controller URL, got %v", stub.urls)
	}

	ui.render(demoState())
	ui.details.qualitySelect.SetSelected("360p")
	if stub.resolution != "360p" {
		t.Errorf("Expected resolution 360p, got %q", stub.resolution)
	}
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _ := newTestRoot(t, false)

	ui.onLanguageChange("pt")
	if ui.analyzeBtn.Text != "Analisar" {
		t.Errorf("Expected portuguese analyze label, got %q", ui.analyzeBtn.Text)
	}
	if ui.settings.GetLanguage() != "pt" {
		t.Errorf("Language should be persisted, got %s", ui.settings.GetLanguage())
	}
}

func TestRootUIReloadDetachesPreviousController(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())

	var built []*stubController
	factory := func(*config.Options) (FormController, error) {
		stub := &stubController{}
		built = append(built, stub)
		return stub, nil
	}

	ui, err := NewRootUI(test.NewWindow(nil), app, settings, factory)
	if err != nil {
		t.Fatalf("NewRootUI failed: %v", err)
	}
	first := built[0]
	staleUpdate := first.onUpdate
	if staleUpdate == nil || first.onProgress == nil {
		t.Fatal("First controller should have observers attached")
	}

	if err := ui.reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(built) != 2 || ui.ctrl != built[1] {
		t.Fatalf("Expected a second active controller, built %d", len(built))
	}
	if first.onUpdate != nil || first.onProgress != nil {
		t.Error("Previous controller should be detached after reload")
	}

	// A fetch that was in flight on the old controller completes late
	old := demoState()
	old.Details.Title = "Old"
	staleUpdate(old)

	if ui.details.Container().Visible() {
		t.Errorf("Stale snapshot must not render, card shows %q", ui.details.titleLabel.Text)
	}
	if ui.analyzeBtn.Disabled() {
		t.Error("Analyze button should stay enabled")
	}

	built[1].onUpdate(demoState())
	if !ui.details.Container().Visible() {
		t.Error("Snapshots of the active controller should render")
	}
}
