package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/identity"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/logging"
	"github.com/ahmetcoskunkizilkaya/user-contracts/internal/services"
	"github.com/getsentry/sentry-go"
)

// gqlError turns any resolver failure into a classified *services.Error so
// the response carries extensions.code. Internal causes are logged and
// reported, never shown to the client.
func gqlError(ctx context.Context, op string, err error) error {
	e := services.Classify(err)
	if e.Kind != services.KindInternal {
		return e
	}

	attrs := []any{"operation", op, "error", err.Error()}
	if id := logging.RequestID(ctx); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if caller, ok := identity.FromContext(ctx); ok {
		attrs = append(attrs, "user_id", caller.UserID.String())
	}
	slog.ErrorContext(ctx, "graphql resolver failed", attrs...)

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("graphql.operation", op)
			hub.CaptureException(err)
		})
	}
	return e
}

type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	slog.ErrorContext(ctx, "graphql resolver panic",
		"error", fmt.Sprint(value),
		"request_id", logging.RequestID(ctx),
	)
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.Recover(value)
	}
}
