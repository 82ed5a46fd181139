package logging

import (
	"context"

	"github.com/five82/armview/internal/poll"
	"github.com/zoobzio/capitan"
	"go.uber.org/zap"
)

// HookPollEvents forwards poll lifecycle signals to logger, so scheduling
// changes across every feed show up in one place at info level. Refresh
// failures are logged at warn.
func HookPollEvents(logger *zap.Logger) {
	if logger == nil {
		return
	}
	events := logger.Named("events")

	capitan.Hook(poll.Started, lifecycleHook(events, "feed started"))
	capitan.Hook(poll.Stopped, lifecycleHook(events, "feed stopped"))
	capitan.Hook(poll.Suspended, lifecycleHook(events, "feed suspended"))
	capitan.Hook(poll.Resumed, lifecycleHook(events, "feed resumed"))

	capitan.Hook(poll.RefreshFailed, func(_ context.Context, e *capitan.Event) {
		feed, _ := poll.KeyFeed.From(e)
		msg, _ := poll.KeyError.From(e)
		elapsed, _ := poll.KeyDuration.From(e)
		events.Warn("feed refresh failed",
			zap.String("feed", feed),
			zap.String("error", msg),
			zap.Duration("duration", elapsed),
		)
	})
}

func lifecycleHook(logger *zap.Logger, msg string) func(context.Context, *capitan.Event) {
	return func(_ context.Context, e *capitan.Event) {
		feed, _ := poll.KeyFeed.From(e)
		fields := []zap.Field{zap.String("feed", feed)}
		if state, ok := poll.KeyState.From(e); ok && state != "" {
			fields = append(fields, zap.String("state", state))
		}
		logger.Info(msg, fields...)
	}
}
