package flows

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/cache"
	"ai_dashboard_server/internal/media"
	"ai_dashboard_server/internal/metrics"
	"ai_dashboard_server/internal/validation"
	"ai_dashboard_server/internal/web"
)

var (
	// ErrInvalidInput wraps validation.Errors describing the rejected fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownFlow is returned when no flow is registered under a name.
	ErrUnknownFlow = errors.New("unknown flow")
)

var tracer = otel.Tracer("ai_dashboard_server/internal/flows")

// PageFetcher fetches readable page text for the webpage summarizer.
type PageFetcher interface {
	FetchText(ctx context.Context, url string) (*web.Page, error)
}

// Deps are the shared services a flow runs against.
type Deps struct {
	Generator *ai.Generator
	Cache     cache.Cache
	Fetcher   PageFetcher
	Media     *media.Store
	Log       *zap.Logger
	Now       func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Result is the outcome of running a flow from raw JSON.
type Result struct {
	Input  json.RawMessage `json:"input"` // the input after defaults were applied
	Output json.RawMessage `json:"output"`
	Cached bool            `json:"cached"`
}

// Runner is a named flow that accepts and returns JSON.
type Runner interface {
	Name() string
	Description() string
	RunJSON(ctx context.Context, d Deps, raw json.RawMessage, lang string) (Result, error)
}

// Flow is a prompt-backed structured generation: validated input in, schema-checked JSON out.
type Flow[In, Out any] struct {
	name        string
	description string
	system      string
	prompt      *template.Template
	output      *validation.Schema
	language    languagePolicy

	// daily, when set, caches results until the next UTC midnight under the returned key parts.
	daily func(in *In) []string
	// data, when set, builds the template data; otherwise the input itself is rendered.
	data func(ctx context.Context, d Deps, in *In) any
}

func newFlow[In, Out any](name, description string, promptFn func() (string, string), schema string) *Flow[In, Out] {
	tpl, system := promptFn()
	return &Flow[In, Out]{
		name:        name,
		description: description,
		system:      system,
		prompt:      template.Must(template.New(name).Option("missingkey=error").Parse(tpl)),
		output:      validation.MustCompile(schema),
	}
}

func (f *Flow[In, Out]) Name() string        { return f.name }
func (f *Flow[In, Out]) Description() string { return f.description }

// Run executes the flow for in. lang is the request language name, applied to
// inputs that omit their own language.
func (f *Flow[In, Out]) Run(ctx context.Context, d Deps, in In, lang string) (Out, error) {
	_, out, _, err := f.run(ctx, d, in, lang)
	return out, err
}

// RunJSON decodes raw into the flow input, runs it and encodes the output.
func (f *Flow[In, Out]) RunJSON(ctx context.Context, d Deps, raw json.RawMessage, lang string) (Result, error) {
	in, err := decodeInput[In](raw)
	if err != nil {
		return Result{}, err
	}
	in, out, cached, err := f.run(ctx, d, in, lang)
	if err != nil {
		return Result{}, err
	}
	return encodeResult(in, out, cached)
}

func (f *Flow[In, Out]) run(ctx context.Context, d Deps, in In, lang string) (In, Out, bool, error) {
	var zero Out
	d = d.withDefaults()
	start := time.Now()

	ctx, span := tracer.Start(ctx, "flow."+f.name)
	defer span.End()

	outcome := metrics.OutcomeError
	defer func() {
		metrics.FlowRuns.WithLabelValues(f.name, outcome).Inc()
		metrics.FlowRunDuration.WithLabelValues(f.name).Observe(time.Since(start).Seconds())
		span.SetAttributes(attribute.String("flow.outcome", outcome))
	}()

	f.language.apply(&in, lang)
	if err := validation.Struct(in); err != nil {
		outcome = metrics.OutcomeInvalid
		return in, zero, false, invalid(err)
	}

	var key string
	if f.daily != nil {
		key = cache.DayKey(d.Now(), append([]string{f.name}, f.daily(&in)...)...)
		var cached Out
		if lookup(ctx, d, key, &cached) {
			outcome = metrics.OutcomeCached
			return in, cached, true, nil
		}
	}

	var data any = in
	if f.data != nil {
		data = f.data(ctx, d, &in)
	}
	prompt, err := f.render(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return in, zero, false, err
	}

	if d.Generator == nil {
		return in, zero, false, fmt.Errorf("flow %s: no generator configured", f.name)
	}
	raw, err := d.Generator.GenerateJSON(ctx, f.system, prompt, f.output.Required()...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.Log.Warn("Flow generation failed", zap.String("flow", f.name), zap.Error(err))
		return in, zero, false, err
	}

	if err := f.output.Validate(raw); err != nil {
		d.Log.Warn("Model output failed schema validation",
			zap.String("flow", f.name), zap.Error(err), zap.ByteString("output", raw))
		err = fmt.Errorf("%w: %w", ai.ErrMalformedOutput, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "schema validation failed")
		return in, zero, false, err
	}

	var out Out
	if err := json.Unmarshal(raw, &out); err != nil {
		err = fmt.Errorf("%w: %w", ai.ErrMalformedOutput, err)
		span.RecordError(err)
		return in, zero, false, err
	}

	if key != "" {
		remember(ctx, d, key, out)
	}
	outcome = metrics.OutcomeSuccess
	return in, out, false, nil
}

func (f *Flow[In, Out]) render(data any) (string, error) {
	var buf bytes.Buffer
	if err := f.prompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", f.name, err)
	}
	buf.WriteString("\n\n")
	buf.WriteString(prompts.OutputInstruction)
	buf.WriteString("\n")
	buf.WriteString(f.output.String())
	return buf.String(), nil
}

// lookup reads a cached value. Cache failures count as misses.
func lookup(ctx context.Context, d Deps, key string, dest any) bool {
	found, err := d.Cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		d.Log.Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		return false
	case found:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return true
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
}

func remember(ctx context.Context, d Deps, key string, value any) {
	ttl := cache.UntilNextUTCMidnight(d.Now())
	if err := d.Cache.Set(ctx, key, value, ttl); err != nil {
		d.Log.Warn("Cache store failed", zap.String("key", key), zap.Error(err))
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// decodeInput parses raw into In. Empty bodies decode to the zero value.
func decodeInput[In any](raw json.RawMessage) (In, error) {
	var in In
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return in, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&in); err != nil {
		return in, invalid(decodeErrors(err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return in, invalid(validation.Errors{{Field: "body", Message: "must contain a single JSON object"}})
	}
	return in, nil
}

func decodeErrors(err error) validation.Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.Errors{{Field: typeErr.Field, Message: "must be a " + jsonKind(typeErr.Type.Kind().String())}}
	}
	return validation.Errors{{Field: "body", Message: "must be a valid JSON object"}}
}

func jsonKind(goKind string) string {
	switch {
	case strings.HasPrefix(goKind, "int"), strings.HasPrefix(goKind, "uint"):
		return "whole number"
	case strings.HasPrefix(goKind, "float"):
		return "number"
	case goKind == "bool":
		return "boolean"
	case goKind == "slice":
		return "list"
	case goKind == "struct", goKind == "map":
		return "object"
	default:
		return goKind
	}
}

func encodeResult(in, out any, cached bool) (Result, error) {
	inRaw, err := json.Marshal(in)
	if err != nil {
		return Result{}, fmt.Errorf("encode input: %w", err)
	}
	outRaw, err := json.Marshal(out)
	if err != nil {
		return Result{}, fmt.Errorf("encode output: %w", err)
	}
	return Result{Input: inRaw, Output: outRaw, Cached: cached}, nil
}
