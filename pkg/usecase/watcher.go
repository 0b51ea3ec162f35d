package usecase

import (
	"context"
	"time"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Default polling intervals
const (
	WatchInterval = 2 * time.Second
	ExitInterval  = time.Second
)

// Watcher polls the process table
type Watcher struct {
	inspector interfaces.ProcessInspector
}

// NewWatcher creates a Watcher
func NewWatcher(inspector interfaces.ProcessInspector) *Watcher {
	return &Watcher{inspector: inspector}
}

// Snapshot returns the current game status
func (w *Watcher) Snapshot(ctx context.Context) (model.GameStatus, error) {
	return w.inspector.Snapshot(ctx)
}

// Watch sends the current status, then every change, until ctx is done.
// The channel is closed on return. Failed polls are logged and skipped.
func (w *Watcher) Watch(ctx context.Context, interval time.Duration) <-chan model.GameStatus {
	ch := make(chan model.GameStatus)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last *model.GameStatus
		for {
			status, err := w.inspector.Snapshot(ctx)
			if err != nil {
				logging.From(ctx).Debug("Process snapshot failed", "error", err)
			} else if last == nil || *last != status {
				select {
				case ch <- status:
				case <-ctx.Done():
					return
				}
				last = &status
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

func (w *Watcher) poll(ctx context.Context, interval time.Duration, done func() (bool, error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		ok, err := done()
		if err != nil {
			logging.From(ctx).Debug("Process poll failed", "error", err)
		} else if ok {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// WaitUntil polls the game status until cond holds
func (w *Watcher) WaitUntil(ctx context.Context, interval time.Duration, cond func(model.GameStatus) bool) error {
	return w.poll(ctx, interval, func() (bool, error) {
		status, err := w.inspector.Snapshot(ctx)
		if err != nil {
			return false, err
		}
		return cond(status), nil
	})
}
