package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/ai"
	"ai_dashboard_server/internal/auth"
	"ai_dashboard_server/internal/flows"
	"ai_dashboard_server/internal/logger"
	"ai_dashboard_server/internal/store"
	"ai_dashboard_server/internal/validation"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// respondError maps domain errors to a status and a generic message. Provider
// errors are logged, never returned.
func (h *APIHandler) respondError(c *gin.Context, err error) {
	status, body := classify(err)

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
		zap.String("request_id", logger.GetRequestID(c)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed", fields...)
	} else {
		h.log.Info("Request rejected", fields...)
	}
	c.AbortWithStatusJSON(status, body)
}

func classify(err error) (int, errorResponse) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, flows.ErrInvalidInput):
		errors.As(err, &verrs)
		return http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: verrs}
	case errors.Is(err, flows.ErrUnknownFlow):
		return http.StatusNotFound, errorResponse{Error: "Unknown AI tool"}
	case errors.Is(err, ai.ErrUnsupported):
		return http.StatusNotImplemented, errorResponse{Error: "This feature is not available with the configured AI provider"}
	case errors.Is(err, ai.ErrEmptyResponse), errors.Is(err, ai.ErrMalformedOutput):
		return http.StatusBadGateway, errorResponse{Error: "The AI service returned an unexpected response. Please try again."}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorResponse{Error: "The AI service took too long to respond. Please try again."}
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "Not found"}
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, errorResponse{Error: "An account with this email already exists"}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"}
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Error: "Authentication required"}
	case errors.As(err, &verrs):
		return http.StatusBadRequest, errorResponse{Error: "Invalid input", Details: verrs}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "Something went wrong. Please try again."}
	}
}

// bindJSON decodes the body into req and runs its validate tags.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("%w: %w", flows.ErrInvalidInput, validation.Errors{{Field: "body", Message: "must be a valid JSON object"}})
	}
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", flows.ErrInvalidInput, err)
	}
	return nil
}

func parsePositiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid positive integer %q", v)
	}
	return n, nil
}
