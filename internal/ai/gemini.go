package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"ai_dashboard_server/internal/types"
)

// GeminiProvider talks to Google's Gemini API (text, Imagen and Veo models).
type GeminiProvider struct {
	client       *genai.Client
	model        string
	imageModel   string
	videoModel   string
	pollInterval time.Duration
}

// GeminiConfig configures a GeminiProvider.
type GeminiConfig struct {
	APIKey       string
	Model        string
	ImageModel   string
	VideoModel   string
	PollInterval time.Duration
	BaseURL      string // optional, for tests
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "imagen-4.0-generate-001"
	}
	if cfg.VideoModel == "" {
		cfg.VideoModel = "veo-3.0-generate-preview"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		client:       client,
		model:        cfg.Model,
		imageModel:   cfg.ImageModel,
		videoModel:   cfg.VideoModel,
		pollInterval: cfg.PollInterval,
	}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (p *GeminiProvider) GenerateImage(ctx context.Context, prompt string) (*types.Media, error) {
	resp, err := p.client.Models.GenerateImages(ctx, p.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate images: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, ErrEmptyResponse
	}
	img := resp.GeneratedImages[0].Image
	return &types.Media{MIMEType: img.MIMEType, Data: img.ImageBytes, URL: img.GCSURI}, nil
}

// GenerateVideo starts a Veo operation and polls it until it completes, fails
// or ctx is done.
func (p *GeminiProvider) GenerateVideo(ctx context.Context, prompt string) (*types.Media, error) {
	op, err := p.client.Models.GenerateVideos(ctx, p.videoModel, prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate videos: %w", err)
	}
	if op == nil {
		return nil, errors.New("expected the model to return an operation")
	}

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()
	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		op, err = p.client.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return nil, fmt.Errorf("GenAI poll video operation: %w", err)
		}
	}

	if op.Error != nil {
		return nil, fmt.Errorf("failed to generate video: %v", op.Error["message"])
	}
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return nil, ErrEmptyResponse
	}
	generated := op.Response.GeneratedVideos[0]
	video := generated.Video

	// The Developer API returns a key-gated URI; fetch the bytes so they can be served locally.
	if len(video.VideoBytes) == 0 && video.URI != "" {
		data, err := p.client.Files.Download(ctx, genai.NewDownloadURIFromGeneratedVideo(generated), nil)
		if err != nil {
			return nil, fmt.Errorf("GenAI download video: %w", err)
		}
		video.VideoBytes = data
	}
	if len(video.VideoBytes) == 0 {
		return nil, ErrEmptyResponse
	}

	mime := video.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	return &types.Media{MIMEType: mime, Data: video.VideoBytes}, nil
}

func (p *GeminiProvider) Close() error {
	return nil
}
