package ai

import (
	"context"

	"ai_dashboard_server/internal/types"
)

// GenerateImage produces a single image for the prompt.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) (*types.Media, error) {
	return call(ctx, g, "image", func(ctx context.Context) (*types.Media, error) {
		m, err := g.provider.GenerateImage(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if m == nil || (len(m.Data) == 0 && m.URL == "") {
			return nil, ErrEmptyResponse
		}
		return m, nil
	})
}

// GenerateVideo produces a single video for the prompt. Video generation is a
// long-running operation, so the per-call timeout does not apply; the caller's
// context bounds it.
func (g *Generator) GenerateVideo(ctx context.Context, prompt string) (*types.Media, error) {
	video := *g
	video.opts.Timeout = 0
	video.opts.MaxRetries = 0
	return call(ctx, &video, "video", func(ctx context.Context) (*types.Media, error) {
		m, err := g.provider.GenerateVideo(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if m == nil || (len(m.Data) == 0 && m.URL == "") {
			return nil, ErrEmptyResponse
		}
		return m, nil
	})
}
