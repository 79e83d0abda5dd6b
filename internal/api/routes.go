package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all HTTP routes. adviceHandler may be nil when
// no AI provider is configured; the advice routes are then absent.
func SetupRoutes(
	router *gin.Engine,
	profileHandler *ProfileHandler,
	workoutHandler *WorkoutHandler,
	statsHandler *StatsHandler,
	adviceHandler *AdviceHandler,
	staticDir string,
) {
	router.Use(RequestIDMiddleware(), RequestLogger())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/profile", profileHandler.GetProfile)
		apiGroup.POST("/profile", profileHandler.UpdateProfile)

		apiGroup.GET("/workouts", workoutHandler.ListWorkouts)
		apiGroup.POST("/workouts", workoutHandler.CreateWorkout)
		apiGroup.GET("/workouts/:id", workoutHandler.GetWorkout)

		apiGroup.GET("/stats", statsHandler.GetWeeklyStats)

		if adviceHandler != nil {
			aiGroup := apiGroup.Group("/ai")
			{
				aiGroup.POST("/suggestion", adviceHandler.SuggestWorkout)
				aiGroup.POST("/chat", adviceHandler.Chat)
			}
		}
	}

	if staticDir != "" {
		setupStatic(router, staticDir)
	}
}

// setupStatic serves the built front-end assets, falling back to
// index.html for client-side routes. API paths are never rewritten.
func setupStatic(router *gin.Engine, staticDir string) {
	indexPath := filepath.Join(staticDir, "index.html")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			abortWithError(c, http.StatusNotFound, "Route not found.")
			return
		}

		assetPath := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(assetPath); err == nil && !info.IsDir() {
			c.File(assetPath)
			return
		}
		c.File(indexPath)
	})
}
