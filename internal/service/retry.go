package service

import (
	"context"
	"errors"
	"log/slog"

	errorvalues "github.com/limbo/wellness/internal/error_values"
)

// withRetry reruns fn while the store reports a conflict. Conflicts never
// leave the service: once attempts are spent a plain error is returned.
func withRetry(ctx context.Context, attempts int, op string, fn func() error) error {
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, errorvalues.ErrConflict) || attempt == attempts {
			break
		}
		slog.Default().Warn(op+": conflict, retrying", slog.Int("attempt", attempt))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.New(op + " error: " + ctxErr.Error())
		}
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errorvalues.ErrConflict):
		return errors.New(op + " error: too many concurrent updates, try again")
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrUserNotFound):
		return err
	}
	return errors.New(op + " error: " + err.Error())
}
