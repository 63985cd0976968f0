package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ai_dashboard_server/internal/flows"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.deps.Media != nil {
		router.Static("/media", h.deps.Media.Dir())
	}

	// --- Accounts ---
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", h.auth.RequireUser(), h.Me)
	}

	// --- AI Tools ---
	// Runs are recorded in the caller's history when a valid token is sent.
	apiGroup := router.Group("/api", h.auth.OptionalUser())
	{
		apiGroup.GET("/flows", h.ListFlows)
		apiGroup.POST("/flows/:name", h.RunFlow)

		// One route per sidebar tool.
		apiGroup.POST("/chat", h.Flow(flows.TranslateAndChat.Name()))
		apiGroup.POST("/quote", h.Flow(flows.GenerateQuote.Name()))
		apiGroup.POST("/quote/ask", h.Flow(flows.AnswerQuestion.Name()))
		apiGroup.GET("/quote/daily", h.Flow(flows.QuoteOfTheDay.Name()))
		apiGroup.POST("/qa", h.Flow(flows.AnswerGeneralQuestion.Name()))
		apiGroup.POST("/recipes", h.Flow(flows.GenerateRecipe.Name()))
		apiGroup.POST("/workouts", h.Flow(flows.GenerateWorkout.Name()))
		apiGroup.POST("/music", h.Flow(flows.FindEritreanMusic.Name()))
		apiGroup.POST("/learning", h.Flow(flows.SuggestLearningResources.Name()))
		apiGroup.POST("/summarize", h.Flow(flows.SummarizeWebpage.Name()))
		apiGroup.POST("/brain-teasers", h.Flow(flows.BrainTeasers.Name()))
		apiGroup.GET("/daily", h.Flow(flows.DailyRecommendation.Name()))
		apiGroup.POST("/images", h.Flow(flows.GenerateImage.Name()))
		apiGroup.POST("/videos/homepage", h.Flow(flows.GenerateHomepageVideo.Name()))
		apiGroup.GET("/portfolio", h.Flow(flows.Portfolio.Name()))

		apiGroup.GET("/history", h.auth.RequireUser(), h.History)

		tasks := apiGroup.Group("/tasks", h.auth.RequireUser())
		{
			tasks.GET("", h.ListTasks)
			tasks.POST("", h.CreateTask)
			tasks.PATCH("/:id", h.UpdateTask)
			tasks.POST("/:id/toggle", h.ToggleTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
