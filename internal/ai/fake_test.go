package ai

import (
	"context"
	"sync"

	"ai_dashboard_server/internal/types"
)

// fakeProvider replays scripted responses and records requests.
type fakeProvider struct {
	mu       sync.Mutex
	texts    []string
	errs     []error
	media    *types.Media
	mediaErr error
	requests []TextRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.texts) {
		return f.texts[i], nil
	}
	return "", nil
}

func (f *fakeProvider) GenerateImage(ctx context.Context, prompt string) (*types.Media, error) {
	return f.media, f.mediaErr
}

func (f *fakeProvider) GenerateVideo(ctx context.Context, prompt string) (*types.Media, error) {
	return f.media, f.mediaErr
}

func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
