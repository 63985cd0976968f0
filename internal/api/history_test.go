package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_dashboard_server/internal/types"
)

func TestHistory_RecordsAuthenticatedRuns(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "history@example.com")
	env.provider.reply(`{"answer":"first"}`, `{"answer":"second"}`, `{"answer":"anonymous"}`)

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/qa?lang=en", map[string]string{"question": "one?"}, token).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/qa?lang=en", map[string]string{"question": "two?"}, token).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/qa", map[string]string{"question": "anon?"}, "").Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/portfolio", nil, token).Code)

	w := env.do(http.MethodGet, "/api/history", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Generations []struct {
			Flow   string          `json:"flow"`
			Input  json.RawMessage `json:"input"`
			Output json.RawMessage `json:"output"`
		} `json:"generations"`
	}
	decode(t, w, &body)
	require.Len(t, body.Generations, 2)
	for _, g := range body.Generations {
		assert.Equal(t, "answer-general-question", g.Flow)
		assert.Contains(t, string(g.Input), `"language":"English"`)
	}

	w = env.do(http.MethodGet, "/api/history?limit=1", nil, token)
	decode(t, w, &body)
	assert.Len(t, body.Generations, 1)
}

func TestHistory_Errors(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "h@example.com")

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, "/api/history", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/history?limit=abc", nil, token).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/history?limit=0", nil, token).Code)
}

func TestHistory_CompactsImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "img@example.com")
	env.provider.media = &types.Media{MIMEType: "image/png", Data: []byte("\x89PNG\r\n\x1a\nrest")}

	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/images", map[string]string{"prompt": "a mountain road to Massawa"}, token).Code)

	w := env.do(http.MethodGet, "/api/history", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "base64")
	assert.Contains(t, w.Body.String(), `"mediaUrl":"/media/`)
}
