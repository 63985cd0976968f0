package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/auth"
	"ai_dashboard_server/internal/cache"
	"ai_dashboard_server/internal/flows"
	"ai_dashboard_server/internal/logger"
	"ai_dashboard_server/internal/media"
	"ai_dashboard_server/internal/store"
	"ai_dashboard_server/internal/types"
)

type fakeProvider struct {
	mu       sync.Mutex
	texts    []string
	err      error
	prompts  []string
	media    *types.Media
	mediaErr error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) GenerateText(_ context.Context, req ai.TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, req.Prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.texts) == 0 {
		return "", nil
	}
	next := f.texts[0]
	f.texts = f.texts[1:]
	return next, nil
}

func (f *fakeProvider) GenerateImage(context.Context, string) (*types.Media, error) {
	return f.media, f.mediaErr
}

func (f *fakeProvider) GenerateVideo(context.Context, string) (*types.Media, error) {
	return f.media, f.mediaErr
}

func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) reply(texts ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, texts...)
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeProvider) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type testEnv struct {
	router   *gin.Engine
	provider *fakeProvider
	store    *store.Store
	redis    *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(context.Background(), store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	authSvc, err := auth.NewService(st, auth.Config{Secret: "test-secret", Issuer: "test", TTL: time.Hour})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rc := cache.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = rc.Close() })

	p := &fakeProvider{}
	deps := flows.Deps{
		Generator: ai.NewGenerator(p, ai.Options{RetryBackoff: time.Millisecond}, nil),
		Cache:     rc,
		Media:     media.NewStore(t.TempDir(), "/media", nil),
	}

	h := NewAPIHandler(flows.Default(), deps, st, authSvc, zap.NewNop())
	r := gin.New()
	r.Use(logger.RequestID())
	RegisterRoutes(r, h)

	return &testEnv{router: r, provider: p, store: st, redis: mr}
}

func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/auth/signup", gin.H{"email": email, "password": "password123"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}
