package flows

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/types"
	"ai_dashboard_server/internal/web"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// scriptedProvider answers text prompts from a queue and records every request.
type scriptedProvider struct {
	mu       sync.Mutex
	texts    []string
	requests []ai.TextRequest
	image    *types.Media
	video    *types.Media
	mediaErr error
	videos   int
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) GenerateText(_ context.Context, req ai.TextRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if len(p.texts) == 0 {
		return "", nil
	}
	next := p.texts[0]
	p.texts = p.texts[1:]
	return next, nil
}

func (p *scriptedProvider) GenerateImage(context.Context, string) (*types.Media, error) {
	return p.image, p.mediaErr
}

func (p *scriptedProvider) GenerateVideo(context.Context, string) (*types.Media, error) {
	p.mu.Lock()
	p.videos++
	p.mu.Unlock()
	return p.video, p.mediaErr
}

func (p *scriptedProvider) Close() error { return nil }

func (p *scriptedProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

func (p *scriptedProvider) lastPrompt() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return ""
	}
	return p.requests[len(p.requests)-1].Prompt
}

// memCache is an in-process cache.Cache.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	fail bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

var errCacheDown = errors.New("cache down")

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return false, errCacheDown
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errCacheDown
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Ping(context.Context) error { return nil }
func (c *memCache) Close() error               { return nil }

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	return out
}

type stubFetcher struct {
	page *web.Page
	err  error
	urls []string
}

func (f *stubFetcher) FetchText(_ context.Context, url string) (*web.Page, error) {
	f.urls = append(f.urls, url)
	return f.page, f.err
}

func newDeps(p *scriptedProvider) Deps {
	return Deps{
		Generator: ai.NewGenerator(p, ai.Options{MaxRetries: 0, RetryBackoff: time.Millisecond}, nil),
		Now:       func() time.Time { return time.Date(2025, 5, 24, 9, 30, 0, 0, time.UTC) },
	}
}
