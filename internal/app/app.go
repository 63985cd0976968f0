// Package app builds the service graph shared by the HTTP server and dashctl.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"ai_dashboard_server/config"
	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/api"
	"ai_dashboard_server/internal/auth"
	"ai_dashboard_server/internal/cache"
	"ai_dashboard_server/internal/flows"
	"ai_dashboard_server/internal/media"
	"ai_dashboard_server/internal/store"
	"ai_dashboard_server/internal/tracing"
	"ai_dashboard_server/internal/web"
)

const serviceName = "ai-dashboard-server"

// App owns every long-lived dependency. Close releases them in reverse order.
type App struct {
	Config    config.Config
	Log       *zap.Logger
	Store     *store.Store
	Cache     cache.Cache
	Generator *ai.Generator
	Flows     *flows.Registry
	Auth      *auth.Service
	Media     *media.Store
	Fetcher   *web.Fetcher

	closers []func(context.Context) error
}

// New connects the store and cache, builds the model provider and registers the flows.
// On error everything opened so far is closed.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (_ *App, err error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log, Flows: flows.Default()}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	a.closers = append(a.closers, shutdownTracing)
	if cfg.OTelEndpoint != "" {
		log.Info("Tracing enabled", zap.String("endpoint", cfg.OTelEndpoint))
	}

	a.Store, err = store.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return a.Store.Close() })
	log.Info("Document store ready", zap.String("driver", cfg.DatabaseDriver))

	a.Cache = cache.Noop{}
	if cfg.RedisAddress != "" {
		rc := cache.NewRedis(cache.RedisConfig{Address: cfg.RedisAddress, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		a.closers = append(a.closers, func(context.Context) error { return rc.Close() })
		if pingErr := rc.Ping(ctx); pingErr != nil {
			// Daily results are recomputed until Redis comes back.
			log.Warn("Redis unreachable at startup", zap.String("address", cfg.RedisAddress), zap.Error(pingErr))
		}
		a.Cache = rc
	} else {
		log.Info("REDIS_ADDRESS not set, daily caching disabled")
	}

	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ai provider: %w", err)
	}
	a.Generator = ai.NewGenerator(provider, ai.Options{
		Timeout:    cfg.AITimeout,
		MaxRetries: cfg.AIMaxRetries,
	}, log)
	a.closers = append(a.closers, func(context.Context) error { return a.Generator.Close() })
	log.Info("AI provider ready", zap.String("provider", provider.Name()))

	a.Auth, err = auth.NewService(a.Store, auth.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	if err = os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("media dir: %w", err)
	}
	a.Media = media.NewStore(cfg.MediaDir, cfg.MediaBaseURL, log)
	a.Fetcher = web.NewFetcher(cfg.WebFetchTimeout, cfg.WebFetchMaxBytes, log)

	return a, nil
}

// NewProvider builds the model provider selected by AI_PROVIDER.
func NewProvider(ctx context.Context, cfg config.Config) (ai.Provider, error) {
	switch cfg.AIProvider {
	case "gemini":
		return ai.NewGeminiProvider(ctx, ai.GeminiConfig{
			APIKey:     cfg.GeminiKey,
			Model:      cfg.GeminiModel,
			ImageModel: cfg.GeminiImageModel,
			VideoModel: cfg.GeminiVideoModel,
		})
	case "openai":
		return ai.NewOpenAIProvider(ai.OpenAIConfig{
			APIKey:     cfg.OpenAIKey,
			Model:      cfg.OpenAIModel,
			ImageModel: cfg.OpenAIImageModel,
		})
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}

// Deps returns the dependencies flows run against.
func (a *App) Deps() flows.Deps {
	return flows.Deps{
		Generator: a.Generator,
		Cache:     a.Cache,
		Fetcher:   a.Fetcher,
		Media:     a.Media,
		Log:       a.Log,
	}
}

// Handler returns the HTTP handler set for the API routes.
func (a *App) Handler() *api.APIHandler {
	return api.NewAPIHandler(a.Flows, a.Deps(), a.Store, a.Auth, a.Log)
}

// Close releases dependencies in reverse order of creation.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
