package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/pkg/console"
)

func TestNotifier_AsyncDoesNotBlock(t *testing.T) {
	out := &console.Buffer{}
	n := NewNotifier(out, 200*time.Millisecond, config.NotifierModeAsync)

	start := time.Now()
	done := n.Notify(context.Background())
	assert.Less(t, time.Since(start), 100*time.Millisecond, "Notify must return before the delay elapses")

	select {
	case <-done:
		t.Fatal("notification finished before its delay")
	default:
	}

	<-done
	assert.Equal(t, "\nProcessing enrollment...\nEnrollment Successful ✅\n", out.String())
}

func TestNotifier_SyncCompletesInline(t *testing.T) {
	out := &console.Buffer{}
	n := NewNotifier(out, time.Millisecond, config.NotifierModeSync)

	done := n.Notify(context.Background())

	select {
	case <-done:
	default:
		t.Fatal("sync notification should be complete on return")
	}
	assert.Equal(t, "\nProcessing enrollment...\nEnrollment Successful ✅\n", out.String())
}

func TestNotifier_WaitDrainsAll(t *testing.T) {
	out := &console.Buffer{}
	n := NewNotifier(out, 5*time.Millisecond, "")

	for i := 0; i < 3; i++ {
		n.Notify(context.Background())
	}
	n.Wait()

	assert.Equal(t, 3, countOf(out.String(), "Enrollment Successful ✅"))
	assert.Equal(t, 3, countOf(out.String(), "Processing enrollment..."))
}

func TestNotifier_Cancelled(t *testing.T) {
	out := &console.Buffer{}
	n := NewNotifier(out, time.Hour, config.NotifierModeAsync)

	ctx, cancel := context.WithCancel(context.Background())
	done := n.Notify(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled notification did not finish")
	}
	require.Contains(t, out.String(), "Thread interrupted")
	assert.NotContains(t, out.String(), "Enrollment Successful")
}
