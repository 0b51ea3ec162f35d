package async

import (
	"context"
	"runtime/debug"

	"github.com/getsentry/sentry-go"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Dispatch runs handler in its own goroutine.
//
// The handler gets a background context holding the caller's logger and
// Sentry hub, so a finished HTTP request does not stop a launched game or
// a running import. Panics and returned errors are logged and reported to
// Sentry when it is configured.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx, hub := detach(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
				hub.Recover(r)
			}
		}()

		if err := handler(newCtx); err != nil {
			logging.From(newCtx).Error("error in async handler", "error", err)
			hub.CaptureException(err)
		}
	}()
}

// detach returns a background context carrying the logger and a Sentry hub
// of ctx. Without a hub on ctx a clone of the current hub is used.
func detach(ctx context.Context) (context.Context, *sentry.Hub) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	newCtx := logging.With(context.Background(), logging.From(ctx))
	return sentry.SetHubOnContext(newCtx, hub), hub
}
