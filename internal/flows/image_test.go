package flows

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/media"
	"ai_dashboard_server/internal/types"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestGenerateImage(t *testing.T) {
	dir := t.TempDir()
	p := &scriptedProvider{image: &types.Media{MIMEType: "image/png", Data: pngBytes}}
	d := newDeps(p)
	d.Media = media.NewStore(dir, "/media", nil)

	out, err := GenerateImage.Run(context.Background(), d, ImageInput{Prompt: "a coffee ceremony at sunrise"}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.ImageURL, "data:image/png;base64,"))
	require.True(t, strings.HasPrefix(out.MediaURL, "/media/"))

	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(out.MediaURL, "/media/")))
	assert.NoError(t, err)
}

func TestGenerateImage_HostedURL(t *testing.T) {
	p := &scriptedProvider{image: &types.Media{URL: "gs://bucket/cat.png"}}

	out, err := GenerateImage.Run(context.Background(), newDeps(p), ImageInput{Prompt: "a cat wearing a gabi"}, "")
	require.NoError(t, err)
	assert.Equal(t, "gs://bucket/cat.png", out.ImageURL)
	assert.Empty(t, out.MediaURL)
}

func TestGenerateHomepageVideo(t *testing.T) {
	dir := t.TempDir()
	p := &scriptedProvider{video: &types.Media{MIMEType: "video/mp4", Data: []byte("fake mp4 bytes")}}
	d := newDeps(p)
	d.Media = media.NewStore(dir, "/media", nil)
	d.Cache = newMemCache()

	first, err := GenerateHomepageVideo.RunJSON(context.Background(), d, nil, "")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Contains(t, string(first.Output), `"/media/`)
	assert.Contains(t, string(first.Output), `.mp4"`)

	second, err := GenerateHomepageVideo.RunJSON(context.Background(), d, nil, "")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.JSONEq(t, string(first.Output), string(second.Output))
	assert.Equal(t, 1, p.videos)
}

func TestGenerateHomepageVideo_Unsupported(t *testing.T) {
	p := &scriptedProvider{mediaErr: ai.ErrUnsupported}

	_, err := GenerateHomepageVideo.Run(context.Background(), newDeps(p), VideoInput{}, "")
	assert.ErrorIs(t, err, ai.ErrUnsupported)
}
