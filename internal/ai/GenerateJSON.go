package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	aiutils "ai_dashboard_server/internal/ai/utils"
)

// GenerateJSON sends a prompt that must be answered with a JSON object and
// returns the recovered object. required names top-level keys the object is
// expected to carry; they are used to unwrap payloads nested under a wrapper key.
func (g *Generator) GenerateJSON(ctx context.Context, system, prompt string, required ...string) (json.RawMessage, error) {
	req := TextRequest{
		System:      system,
		Prompt:      prompt,
		Temperature: g.opts.Temperature,
		JSON:        true,
	}

	text, err := call(ctx, g, "text", func(ctx context.Context) (string, error) {
		out, err := g.provider.GenerateText(ctx, req)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(out) == "" {
			return "", ErrEmptyResponse
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	obj, err := aiutils.ExtractJSONObject(text, required...)
	if err != nil {
		g.log.Debug("unparseable model output", zap.String("raw", text))
		if errors.Is(err, aiutils.ErrNoJSONObject) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
		return nil, err
	}
	return obj, nil
}
