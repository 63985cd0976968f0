package flows

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"ai_dashboard_server/internal/metrics"
	"ai_dashboard_server/internal/validation"
)

// Action is a flow that is not a single structured prompt: media generation or static data.
type Action[In, Out any] struct {
	name        string
	description string
	language    languagePolicy
	fn          func(ctx context.Context, d Deps, in In) (Out, bool, error)
}

func newAction[In, Out any](name, description string, fn func(ctx context.Context, d Deps, in In) (Out, bool, error)) *Action[In, Out] {
	return &Action[In, Out]{name: name, description: description, fn: fn}
}

func (a *Action[In, Out]) Name() string        { return a.name }
func (a *Action[In, Out]) Description() string { return a.description }

// Run validates in and executes the action.
func (a *Action[In, Out]) Run(ctx context.Context, d Deps, in In, lang string) (Out, error) {
	_, out, _, err := a.run(ctx, d, in, lang)
	return out, err
}

func (a *Action[In, Out]) RunJSON(ctx context.Context, d Deps, raw json.RawMessage, lang string) (Result, error) {
	in, err := decodeInput[In](raw)
	if err != nil {
		return Result{}, err
	}
	in, out, cached, err := a.run(ctx, d, in, lang)
	if err != nil {
		return Result{}, err
	}
	return encodeResult(in, out, cached)
}

func (a *Action[In, Out]) run(ctx context.Context, d Deps, in In, lang string) (In, Out, bool, error) {
	var zero Out
	d = d.withDefaults()
	start := time.Now()

	ctx, span := tracer.Start(ctx, "flow."+a.name)
	defer span.End()

	outcome := metrics.OutcomeError
	defer func() {
		metrics.FlowRuns.WithLabelValues(a.name, outcome).Inc()
		metrics.FlowRunDuration.WithLabelValues(a.name).Observe(time.Since(start).Seconds())
		span.SetAttributes(attribute.String("flow.outcome", outcome))
	}()

	a.language.apply(&in, lang)
	if err := validation.Struct(in); err != nil {
		outcome = metrics.OutcomeInvalid
		return in, zero, false, invalid(err)
	}

	out, cached, err := a.fn(ctx, d, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return in, zero, false, err
	}
	if cached {
		outcome = metrics.OutcomeCached
	} else {
		outcome = metrics.OutcomeSuccess
	}
	return in, out, cached, nil
}
