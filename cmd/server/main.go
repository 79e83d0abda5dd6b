package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/internal/api"
	"fittrack/internal/config"
	"fittrack/internal/repository/sqlite"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("Starting fittrack server...")

	// Best effort; real deployments configure via environment.
	_ = godotenv.Load()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Could not open database %q: %v", cfg.Database.Path, err)
	}
	defer func() {
		log.Info("Closing database...")
		if err := sqlite.Close(db); err != nil {
			log.Errorf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	if err := sqlite.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}
	if err := sqlite.EnsureProfile(ctx, db); err != nil {
		log.Fatalf("Could not seed profile: %v", err)
	}
	log.WithField("path", cfg.Database.Path).Info("Database ready.")

	// --- Repositories ---
	profileRepo := sqlite.NewProfileRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)

	// --- Services ---
	profileService := service.NewProfileService(profileRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	statsService := service.NewStatsService(workoutRepo)

	var adviceHandler *api.AdviceHandler
	switch cfg.AI.Provider {
	case "gemini":
		adviceService, err := service.NewGeminiAdviceService(ctx, cfg.AI.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Could not create Gemini advice service: %v", err)
		}
		adviceHandler = api.NewAdviceHandler(adviceService, profileService, workoutService)
	case "openai":
		adviceService := service.NewOpenAIAdviceService(cfg.AI.OpenAIAPIKey)
		adviceHandler = api.NewAdviceHandler(adviceService, profileService, workoutService)
	case "":
		log.Info("No AI provider configured, advice routes disabled.")
	default:
		log.Fatalf("Unknown AI provider %q", cfg.AI.Provider)
	}

	// --- Router ---
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(
		router,
		api.NewProfileHandler(profileService),
		api.NewWorkoutHandler(workoutService),
		api.NewStatsHandler(statsService),
		adviceHandler,
		cfg.Server.StaticDir,
	)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.WithField("address", cfg.Server.Address).Info("Server starting.")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}
