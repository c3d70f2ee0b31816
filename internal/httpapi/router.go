package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rankedlog/internal/common"
	"rankedlog/internal/httpapi/handlers"
	"rankedlog/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.Use(middleware.RequestID())

	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	api.POST("/games", h.CreateGame)
	api.GET("/games", h.ListGames)
	api.GET("/games/:id", h.GetGame)
	api.PATCH("/games/:id", h.UpdateGame)
	api.DELETE("/games/:id", h.DeleteGame)

	api.GET("/stats", h.GetStats)
	api.GET("/daily-summary", h.GetDailySummary)

	api.POST("/summary", h.ChampionSummary)
	api.POST("/summarize", h.SummarizeNotes)

	return r
}
