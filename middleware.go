package taskq

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// WithLogging wraps fn with start and finish log lines tagged with the
// given prefix. It is scheduling-neutral: the result and error pass
// through unchanged.
func WithLogging[T any](prefix string, fn ExecFunc[T]) ExecFunc[T] {
	return func(ctx context.Context, task *Task[T]) error {
		logger := lg.FromContext(ctx).With(
			lg.String("prefix", prefix),
			lg.String("task", task.Name),
		)
		logger.Info("calling")
		err := fn(ctx, task)
		if err != nil {
			logger.Error("failed", lg.Any("error", err))
			return err
		}
		logger.Info("completed")
		return nil
	}
}

// WithRetry wraps fn with bounded retries and exponential backoff.
//
// The queue itself never retries; composing this middleware into the
// executor keeps retry a caller decision, invisible to slot accounting.
// The last attempt's error is returned once attempts are exhausted.
func WithRetry[T any](pol RetryPolicy, fn ExecFunc[T]) ExecFunc[T] {
	return func(ctx context.Context, task *Task[T]) error {
		p := pol.withDefaults()
		logger := lg.FromContext(ctx).With(lg.String("task", task.Name))
		bo := boff.New(p.Initial, p.Max, time.Now().UnixNano())

		var err error
		for attempt := 1; attempt <= p.Attempts; attempt++ {
			if err = fn(ctx, task); err == nil {
				return nil
			}
			if attempt == p.Attempts {
				logger.Error("attempts exhausted",
					lg.Int("attempt", attempt),
					lg.Any("error", err),
				)
				break
			}
			delay := bo.Next()
			logger.Warn("attempt failed; backing off",
				lg.Int("attempt", attempt),
				lg.String("sleep", delay.String()),
				lg.Any("error", err),
			)
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C // drain if timer fired
				}
				return ctx.Err()
			}
		}
		return err
	}
}
