package ai

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"ai_dashboard_server/internal/types"
)

var (
	// ErrEmptyResponse means the provider answered with no usable content.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrMalformedOutput means the provider's answer did not match the expected structure.
	ErrMalformedOutput = errors.New("model returned malformed output")
	// ErrUnsupported means the configured provider cannot perform the operation.
	ErrUnsupported = errors.New("operation not supported by the model provider")
)

// TextRequest is a single structured-output prompt.
type TextRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	JSON        bool // ask the provider for a JSON object response
}

// Provider is a hosted generative model backend.
type Provider interface {
	Name() string
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	GenerateImage(ctx context.Context, prompt string) (*types.Media, error)
	GenerateVideo(ctx context.Context, prompt string) (*types.Media, error)
	Close() error
}

// Options tunes the Generator's call policy.
type Options struct {
	Timeout      time.Duration // per model call
	MaxRetries   int
	RetryBackoff time.Duration
	Temperature  float32
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 500 * time.Millisecond
	}
	if o.Temperature == 0 {
		o.Temperature = 0.7
	}
	return o
}

// Generator runs prompts against a Provider with retries, parsing and instrumentation.
type Generator struct {
	provider Provider
	opts     Options
	log      *zap.Logger
}

func NewGenerator(provider Provider, opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		provider: provider,
		opts:     opts.withDefaults(),
		log:      log.With(zap.String("provider", provider.Name())),
	}
}

// ProviderName returns the name of the underlying provider.
func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// Close releases the provider.
func (g *Generator) Close() error {
	return g.provider.Close()
}
