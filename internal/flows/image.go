package flows

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/cache"
	"ai_dashboard_server/internal/media"
)

var errNoGenerator = errors.New("no generator configured")

type ImageInput struct {
	Prompt string `json:"prompt" validate:"required,min=10,max=2000"`
}

type ImageOutput struct {
	ImageURL string `json:"imageUrl"`           // data URI, or the provider's URL when it hosts the image
	MediaURL string `json:"mediaUrl,omitempty"` // copy in the media store
}

// GenerateImage renders an image from a text prompt.
var GenerateImage = newAction("generate-image", "Generate an image from a text prompt",
	func(ctx context.Context, d Deps, in ImageInput) (ImageOutput, bool, error) {
		if d.Generator == nil {
			return ImageOutput{}, false, errNoGenerator
		}
		m, err := d.Generator.GenerateImage(ctx, in.Prompt)
		if err != nil {
			return ImageOutput{}, false, err
		}
		if len(m.Data) == 0 {
			return ImageOutput{ImageURL: m.URL}, false, nil
		}

		out := ImageOutput{ImageURL: media.DataURI(m)}
		if d.Media != nil {
			saved, err := d.Media.SaveMedia(m)
			if err != nil {
				d.Log.Warn("Failed to keep generated image", zap.Error(err))
			} else {
				out.MediaURL = saved.URL
			}
		}
		return out, false, nil
	})

type VideoInput struct{}

type VideoOutput struct {
	VideoURL string `json:"videoUrl"`
}

// GenerateHomepageVideo produces the homepage background video once per UTC day.
var GenerateHomepageVideo = newAction("generate-homepage-video", "Generate today's homepage background video",
	func(ctx context.Context, d Deps, _ VideoInput) (VideoOutput, bool, error) {
		key := cache.DayKey(d.Now(), "generate-homepage-video")
		var cached VideoOutput
		if lookup(ctx, d, key, &cached) && cached.VideoURL != "" {
			return cached, true, nil
		}
		if d.Generator == nil {
			return VideoOutput{}, false, errNoGenerator
		}

		m, err := d.Generator.GenerateVideo(ctx, prompts.HomepageVideoPrompt)
		if err != nil {
			return VideoOutput{}, false, err
		}

		out := VideoOutput{VideoURL: m.URL}
		if len(m.Data) > 0 {
			if d.Media == nil {
				out.VideoURL = media.DataURI(m)
			} else {
				saved, err := d.Media.SaveMedia(m)
				if err != nil {
					return VideoOutput{}, false, err
				}
				out.VideoURL = saved.URL
			}
		}
		// Data URIs are too large to share through the cache.
		if !strings.HasPrefix(out.VideoURL, "data:") {
			remember(ctx, d, key, out)
		}
		return out, false, nil
	})
