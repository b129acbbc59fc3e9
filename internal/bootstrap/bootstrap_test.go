package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/cli"
	"github.com/yigit/enrollment/internal/pkg/console"
)

func TestLoadConfigAndSetupLogger_Overrides(t *testing.T) {
	dir := t.TempDir()
	logs := &bytes.Buffer{}

	cfg, err := LoadConfigAndSetupLogger(filepath.Join(dir, "none.yaml"), Overrides{
		LogLevel:        "debug",
		LogFormat:       "json",
		EnrollmentsFile: filepath.Join(dir, "custom.txt"),
	}, logs)
	t.Cleanup(func() { _, _ = LoadConfigAndSetupLogger("", Overrides{LogLevel: "disabled"}, os.Stderr) })

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.txt"), cfg.Storage.EnrollmentsFile)
	assert.Contains(t, logs.String(), `"message":"Logger configured"`)
}

func TestRunEnrollment_DrainsNotifier(t *testing.T) {
	t.Setenv("NOTIFIER_DELAY", "200ms")
	dir := t.TempDir()

	cfg, err := LoadConfigAndSetupLogger("", Overrides{LogLevel: "disabled", EnrollmentsFile: filepath.Join(dir, "e.txt")}, &bytes.Buffer{})
	require.NoError(t, err)

	out := &console.Buffer{}
	deps := BuildDependencies(cfg, out)

	outcome := deps.RunEnrollment(context.Background(), strings.NewReader("Lena\n1\n2\n"))

	require.Equal(t, cli.OutcomeEnrolled, outcome)
	transcript := out.String()
	assert.Contains(t, transcript, "Total Fee: Rs 2400.0\n")
	assert.Contains(t, transcript, "Enrollment Successful ✅\n")
	assert.Less(t,
		strings.Index(transcript, "Enrollment saved in"),
		strings.Index(transcript, "Enrollment Successful"),
		"the main flow finishes before the delayed notification")
}
