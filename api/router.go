package api

import "github.com/gin-gonic/gin"

// Register wires the canonical routes, the legacy aliases for older frontend
// clients, and the health check.
func (h *Handler) Register(router *gin.Engine) {
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/suggestions", h.ListSuggestions)
		apiGroup.POST("/suggestions", h.CreateSuggestion)
		apiGroup.POST("/suggestions/:row/like", h.LikeSuggestion("row"))

		apiGroup.GET("/cards", h.ListCards)
		apiGroup.POST("/suggest", h.CreateSuggestion)
		apiGroup.POST("/like", h.LikeByBody)
		apiGroup.POST("/vote/:item_id", h.LikeSuggestion("item_id"))
	}

	router.GET("/healthz", h.HealthCheck)
}
