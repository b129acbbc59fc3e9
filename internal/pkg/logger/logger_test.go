package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, DisabledLevel, ParseLevel("disabled"))
	assert.Equal(t, WarnLevel, ParseLevel("verbose"))
	assert.Equal(t, WarnLevel, ParseLevel(""))
}

func TestConfigure_LevelFiltersEvents(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: WarnLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("hidden")
	Warn().Str("file", "enrollments.txt").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"message":"shown"`)
	require.Contains(t, out, `"file":"enrollments.txt"`)
}

func TestWithField(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: WarnLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})

	l := WithField("component", "notifier")
	l.Debug().Msg("started")

	assert.Contains(t, buf.String(), `"component":"notifier"`)
}
