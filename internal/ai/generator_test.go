package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_dashboard_server/internal/types"
)

func fastOptions(retries int) Options {
	return Options{Timeout: time.Second, MaxRetries: retries, RetryBackoff: time.Millisecond}
}

func TestGenerateJSON_Success(t *testing.T) {
	p := &fakeProvider{texts: []string{"```json\n{\"answer\":\"ok\"}\n```"}}
	g := NewGenerator(p, fastOptions(0), nil)

	out, err := g.GenerateJSON(context.Background(), "sys", "prompt", "answer")
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"ok"}`, string(out))

	require.Len(t, p.requests, 1)
	assert.True(t, p.requests[0].JSON)
	assert.Equal(t, "sys", p.requests[0].System)
	assert.Equal(t, float32(0.7), p.requests[0].Temperature)
}

func TestGenerateJSON_RetriesTransientErrors(t *testing.T) {
	p := &fakeProvider{
		errs:  []error{&openai.APIError{HTTPStatusCode: 503}, &openai.APIError{HTTPStatusCode: 429}},
		texts: []string{"", "", `{"answer":"third time"}`},
	}
	g := NewGenerator(p, fastOptions(2), nil)

	out, err := g.GenerateJSON(context.Background(), "", "p")
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"third time"}`, string(out))
	assert.Equal(t, 3, p.calls())
}

func TestGenerateJSON_DoesNotRetryPermanentErrors(t *testing.T) {
	p := &fakeProvider{errs: []error{&openai.APIError{HTTPStatusCode: 400, Message: "bad"}}}
	g := NewGenerator(p, fastOptions(3), nil)

	_, err := g.GenerateJSON(context.Background(), "", "p")
	require.Error(t, err)
	assert.Equal(t, 1, p.calls())
	var apiErr *openai.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestGenerateJSON_GivesUpAfterMaxRetries(t *testing.T) {
	transient := &openai.APIError{HTTPStatusCode: 500}
	p := &fakeProvider{errs: []error{transient, transient, transient}}
	g := NewGenerator(p, fastOptions(1), nil)

	_, err := g.GenerateJSON(context.Background(), "", "p")
	require.Error(t, err)
	assert.Equal(t, 2, p.calls())
}

func TestGenerateJSON_EmptyAndMalformed(t *testing.T) {
	g := NewGenerator(&fakeProvider{texts: []string{"   "}}, fastOptions(0), nil)
	_, err := g.GenerateJSON(context.Background(), "", "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	g = NewGenerator(&fakeProvider{texts: []string{"no json here"}}, fastOptions(0), nil)
	_, err = g.GenerateJSON(context.Background(), "", "p")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestGenerateJSON_ContextCancelledStopsRetrying(t *testing.T) {
	p := &fakeProvider{errs: []error{&openai.APIError{HTTPStatusCode: 500}}}
	g := NewGenerator(p, Options{Timeout: time.Second, MaxRetries: 5, RetryBackoff: time.Hour}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.GenerateJSON(ctx, "", "p")
	require.Error(t, err)
	assert.Equal(t, 1, p.calls())
}

func TestGenerateImage(t *testing.T) {
	media := &types.Media{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	g := NewGenerator(&fakeProvider{media: media}, fastOptions(0), nil)

	got, err := g.GenerateImage(context.Background(), "a cat")
	require.NoError(t, err)
	assert.Equal(t, media, got)

	g = NewGenerator(&fakeProvider{media: &types.Media{}}, fastOptions(0), nil)
	_, err = g.GenerateImage(context.Background(), "a cat")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateVideo_Unsupported(t *testing.T) {
	g := NewGenerator(&fakeProvider{mediaErr: ErrUnsupported}, fastOptions(2), nil)
	_, err := g.GenerateVideo(context.Background(), "intro")
	assert.ErrorIs(t, err, ErrUnsupported)
}
