package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/auth"
	"ai_dashboard_server/internal/cache"
	"ai_dashboard_server/internal/flows"
	"ai_dashboard_server/internal/i18n"
	"ai_dashboard_server/internal/logger"
	"ai_dashboard_server/internal/store"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	flows *flows.Registry
	deps  flows.Deps
	store *store.Store
	auth  *auth.Service
	log   *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(registry *flows.Registry, deps flows.Deps, st *store.Store, authSvc *auth.Service, log *zap.Logger) *APIHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Log == nil {
		deps.Log = log
	}
	if deps.Cache == nil {
		deps.Cache = cache.Noop{}
	}
	return &APIHandler{
		flows: registry,
		deps:  deps,
		store: st,
		auth:  authSvc,
		log:   log,
	}
}

// flows that are not worth keeping in a user's history.
var unsavedFlows = map[string]bool{
	flows.Portfolio.Name():             true,
	flows.GenerateHomepageVideo.Name(): true,
}

// --- Flow Handlers ---

// GET /api/flows
func (h *APIHandler) ListFlows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flows": h.flows.List()})
}

// POST /api/flows/:name
func (h *APIHandler) RunFlow(c *gin.Context) {
	h.run(c, c.Param("name"))
}

// Flow returns a handler bound to one flow, used for the per-tool routes.
func (h *APIHandler) Flow(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, name)
	}
}

func (h *APIHandler) run(c *gin.Context, name string) {
	raw, err := requestInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	lang := i18n.Name(i18n.Resolve(c.Request))
	res, err := h.flows.RunJSON(c.Request.Context(), h.deps, name, raw, lang)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if claims, ok := auth.CurrentClaims(c); ok && !unsavedFlows[name] {
		h.saveGeneration(c, claims.Subject, name, res)
	}

	if res.Cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", res.Output)
}

// requestInput returns the JSON body, or for GET requests an object built from the query string.
func requestInput(c *gin.Context) (json.RawMessage, error) {
	if c.Request.Method == http.MethodGet {
		fields := map[string]string{}
		for key, values := range c.Request.URL.Query() {
			if key == i18n.LangParam || len(values) == 0 {
				continue
			}
			fields[key] = values[0]
		}
		if len(fields) == 0 {
			return nil, nil
		}
		return json.Marshal(fields)
	}
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (h *APIHandler) saveGeneration(c *gin.Context, userID, name string, res flows.Result) {
	output := res.Output
	if name == flows.GenerateImage.Name() {
		output = compactImageOutput(output)
	}
	if _, err := h.store.SaveGeneration(c.Request.Context(), userID, name, res.Input, output); err != nil {
		h.log.Warn("Failed to save generation",
			zap.String("flow", name),
			zap.String("user_id", userID),
			zap.String("request_id", logger.GetRequestID(c)),
			zap.Error(err),
		)
	}
}

// compactImageOutput drops inline image data when a stored copy exists.
func compactImageOutput(raw json.RawMessage) json.RawMessage {
	var out flows.ImageOutput
	if err := json.Unmarshal(raw, &out); err != nil || out.MediaURL == "" {
		return raw
	}
	if strings.HasPrefix(out.ImageURL, "data:") {
		out.ImageURL = ""
	}
	compact, err := json.Marshal(out)
	if err != nil {
		return raw
	}
	return compact
}

// --- History ---

// GET /api/history?limit=
func (h *APIHandler) History(c *gin.Context) {
	claims, _ := auth.CurrentClaims(c)

	limit := 0
	if v := c.Query("limit"); v != "" {
		var err error
		if limit, err = parsePositiveInt(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
	}

	generations, err := h.store.ListGenerations(c.Request.Context(), claims.Subject, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": generations})
}

// --- Health ---

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"store", h.store.Ping},
		{"cache", h.deps.Cache.Ping},
	}
	for _, check := range checks {
		if err := check.ping(ctx); err != nil {
			h.log.Warn("Health check failed", zap.String("component", check.name), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "component": check.name})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
