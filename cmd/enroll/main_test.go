package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EnrollThenHistory(t *testing.T) {
	t.Setenv("NOTIFIER_DELAY", "1ms")
	dir := t.TempDir()
	logPath := filepath.Join(dir, "enrollments.txt")
	base := []string{"enroll", "--config", filepath.Join(dir, "none.yaml"), "--log-level", "disabled", "-f", logPath}

	// --- Act: enroll ---
	out := &bytes.Buffer{}
	err := run(context.Background(), base, strings.NewReader("Amara\n2\n3\n"), out, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	transcript := out.String()
	assert.Contains(t, transcript, "Total Fee: Rs 5500.0\n")
	assert.Contains(t, transcript, "Enrollment saved in "+logPath+"\n")
	assert.Contains(t, transcript, "Enrollment Successful ✅\n", "pending notification is drained before exit")

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "Student: Amara, Course: CS101L, Credits: 3, Total Fee: Rs 5500.0\n", string(raw))

	// --- Act: history ---
	out.Reset()
	err = run(context.Background(), append(base, "history"), strings.NewReader(""), out, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "Student: Amara, Course: CS101L, Credits: 3, Total Fee: Rs 5500.0\n", out.String())
}

func TestRun_UserErrorsDoNotFail(t *testing.T) {
	t.Setenv("NOTIFIER_DELAY", "1ms")
	dir := t.TempDir()
	logPath := filepath.Join(dir, "enrollments.txt")
	args := []string{"enroll", "--config", filepath.Join(dir, "none.yaml"), "--log-level", "disabled", "-f", logPath}

	cases := map[string]string{
		"invalid choice":  "Amara\n3\n2\n",
		"invalid credits": "Amara\n1\n0\n",
		"malformed input": "Amara\nx\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(context.Background(), args, strings.NewReader(input), &bytes.Buffer{}, &bytes.Buffer{})
			require.NoError(t, err)
		})
	}

	_, err := os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "no enrollment should have been written")
}

func TestRun_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("notifier:\n  mode: threaded\n"), 0o600))

	err := run(context.Background(), []string{"enroll", "--config", cfgPath, "--log-level", "disabled"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config or setup logger")
}

func TestRun_EmptyHistory(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}

	err := run(context.Background(), []string{"enroll", "--config", filepath.Join(dir, "none.yaml"), "--log-level", "disabled", "-f", filepath.Join(dir, "e.txt"), "history"}, strings.NewReader(""), out, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "No enrollments recorded.\n", out.String())
}
