package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogging(&buf, false)
	assert.Equal(t, logrus.InfoLevel, log.Level)

	log.Debug("hidden")
	log.WithField("transfers", 3).Info("Convert.Complete")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loglevel=info")
	assert.Contains(t, out, "Convert.Complete")
	assert.Contains(t, out, "transfers=3")
}

func TestSetupLogging_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogging(&buf, true)
	assert.Equal(t, logrus.DebugLevel, log.Level)

	log.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
