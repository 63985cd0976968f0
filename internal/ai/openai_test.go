package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func TestOpenAIProvider_GenerateText(t *testing.T) {
	var got map[string]any
	p := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"answer\":\"selam\"}"},"finish_reason":"stop"}]}`))
	})

	out, err := p.GenerateText(context.Background(), TextRequest{System: "sys", Prompt: "hi", JSON: true, Temperature: 0.5})
	require.NoError(t, err)
	assert.Equal(t, `{"answer":"selam"}`, out)

	assert.Equal(t, "gpt-4o", got["model"])
	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "json_object", got["response_format"].(map[string]any)["type"])
}

func TestOpenAIProvider_GenerateText_APIError(t *testing.T) {
	p := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"rate_limit"}}`))
	})

	_, err := p.GenerateText(context.Background(), TextRequest{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit")
}

func TestOpenAIProvider_GenerateImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	p := newOpenAITestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]any{{"b64_json": base64.StdEncoding.EncodeToString(png)}},
		})
	})

	media, err := p.GenerateImage(context.Background(), "a sunrise over Asmara")
	require.NoError(t, err)
	assert.Equal(t, png, media.Data)
	assert.Equal(t, "image/png", media.MIMEType)
}

func TestOpenAIProvider_VideoUnsupported(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})
	require.NoError(t, err)
	_, err = p.GenerateVideo(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestNewProviders_RequireKeys(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err)
	_, err = NewGeminiProvider(context.Background(), GeminiConfig{})
	assert.Error(t, err)
}
