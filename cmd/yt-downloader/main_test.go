package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fn7/yt-downloader/internal/controller"
	"github.com/fn7/yt-downloader/internal/model"
)

func TestPrintDetails(t *testing.T) {
	var buf bytes.Buffer
	printDetails(&buf, &model.VideoDetails{
		Title:    "How to Build a Next.js Application",
		Duration: "10:42",
		Author:   "Coding Tutorials",
		AvailableResolutions: []model.Resolution{
			{Name: "1080p"}, {Name: "720p"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Title:    How to Build a Next.js Application\n")
	assert.Contains(t, out, "Duration: 10:42\n")
	assert.Contains(t, out, "Author:   Coding Tutorials\n")
	assert.Contains(t, out, "  - 1080p\n  - 720p\n")
	assert.NotContains(t, out, "Thumb:")
}

func TestFormError(t *testing.T) {
	wrapped := errors.New("fetch video details: timeout")

	err := formError(model.FormState{Error: controller.InvalidURLMessage}, controller.ErrInvalidURL)
	assert.EqualError(t, err, controller.InvalidURLMessage)

	assert.Equal(t, wrapped, formError(model.FormState{}, wrapped))
}

func TestProgressLine(t *testing.T) {
	var buf bytes.Buffer
	p := &progressLine{w: &buf}

	p.finish()
	assert.Empty(t, buf.String(), "nothing drawn, nothing to end")

	p.update(500, 1000)
	assert.Contains(t, buf.String(), " 50%  500 B / 1.0 kB")
	assert.NotContains(t, buf.String(), "\n")

	p.update(1000, 1000)
	assert.NotContains(t, buf.String(), "\n")

	p.finish()
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))

	// Unknown totals still end their line
	buf.Reset()
	p.update(2048, -1)
	assert.Contains(t, buf.String(), "2.0 kB")
	p.finish()
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"config", "backend-url", "download-dir", "strict-url", "demo", "tls-fingerprint", "debug", "json"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}

	download, _, err := root.Find([]string{"download"})
	assert.NoError(t, err)
	assert.NotNil(t, download.Flags().Lookup("quality"))
	assert.NotNil(t, download.Flags().Lookup("format"))
}
