package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, false, false) })

	var buf bytes.Buffer
	Setup(&buf, true, true)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("url", "https://youtu.be/abc").Debug("fetching")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetching", entry["msg"])
	assert.Equal(t, "https://youtu.be/abc", entry["url"])
	assert.Equal(t, "debug", entry["level"])
}

func TestSetupInfoLevel(t *testing.T) {
	t.Cleanup(func() { Setup(os.Stderr, false, false) })

	var buf bytes.Buffer
	Setup(&buf, false, false)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	logrus.Debug("hidden")
	assert.Empty(t, buf.String())

	logrus.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
