package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

const (
	msgProcessing  = "\nProcessing enrollment..."
	msgSuccessful  = "Enrollment Successful ✅"
	msgInterrupted = "Thread interrupted"
)

// Notifier prints a processing banner, waits, then prints a success banner.
// It has no effect on enrollment correctness. In async mode each
// notification runs in its own goroutine and callers are not expected to
// wait for it; the process may exit first unless Wait is called.
type Notifier struct {
	out   io.Writer
	delay time.Duration
	mode  string
	wg    sync.WaitGroup
}

// NewNotifier creates a notifier writing to out. Unknown modes behave as async.
func NewNotifier(out io.Writer, delay time.Duration, mode string) *Notifier {
	if mode != config.NotifierModeSync {
		mode = config.NotifierModeAsync
	}
	return &Notifier{out: out, delay: delay, mode: mode}
}

// Notify runs one notification. The returned channel is closed once the last
// banner has been printed. In sync mode it is already closed on return.
func (n *Notifier) Notify(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	if n.mode == config.NotifierModeSync {
		n.run(ctx)
		close(done)
		return done
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer close(done)
		n.run(ctx)
	}()
	return done
}

// Wait blocks until every async notification has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) run(ctx context.Context) {
	fmt.Fprintln(n.out, msgProcessing)

	timer := time.NewTimer(n.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		fmt.Fprintln(n.out, msgSuccessful)
	case <-ctx.Done():
		logger.Debug().Err(ctx.Err()).Msg("Notification interrupted")
		fmt.Fprintln(n.out, msgInterrupted)
	}
}
