package ai

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/metrics"
	"ai_dashboard_server/internal/utils"
)

var tracer = otel.Tracer("ai_dashboard_server/internal/ai")

// call runs fn with the per-call timeout, retrying transient failures with backoff.
func call[T any](ctx context.Context, g *Generator, kind string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "model."+kind)
	span.SetAttributes(attribute.String("model.provider", g.provider.Name()))
	defer span.End()

	var (
		result T
		err    error
	)
	for attempt := 0; attempt <= g.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := utils.RetryDelay(g.opts.RetryBackoff, attempt)
			g.log.Warn("model call failed, retrying",
				zap.String("kind", kind),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
				zap.Error(err),
			)
			if sleepErr := utils.Sleep(ctx, delay); sleepErr != nil {
				err = sleepErr
				break
			}
		}

		var (
			callCtx context.Context
			cancel  context.CancelFunc
		)
		if g.opts.Timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		} else {
			callCtx, cancel = context.WithCancel(ctx)
		}
		result, err = fn(callCtx)
		cancel()

		if err == nil {
			metrics.ModelCalls.WithLabelValues(g.provider.Name(), kind, metrics.OutcomeSuccess).Inc()
			return result, nil
		}
		metrics.ModelCalls.WithLabelValues(g.provider.Name(), kind, metrics.OutcomeError).Inc()
		if ctx.Err() != nil || !utils.ShouldRetry(err) {
			break
		}
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	var zero T
	if errors.Is(err, ErrUnsupported) || errors.Is(err, ErrEmptyResponse) {
		return zero, err
	}
	return zero, fmt.Errorf("%s call to %s failed: %w", kind, g.provider.Name(), err)
}
