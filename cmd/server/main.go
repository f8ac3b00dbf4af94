package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/config"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/database"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/handler"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/httputil"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/jobs"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/middleware"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/repository"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	if err := db.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}
	cancel()
	log.Info().Str("path", cfg.DatabasePath).Msg("database ready")

	sessionRepo := repository.NewSessionRepository(db.DB)
	postRepo := repository.NewPostRepository(db.DB)

	authService := service.NewAuthService(
		sessionRepo, cfg.AdminUsername, cfg.AdminPasswordHash, cfg.SessionTTL(),
	)
	postService := service.NewPostService(postRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	staticHandler := handler.NewStaticHandler(cfg.StaticDir)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(middleware.SecurityHeaders)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			httputil.WriteJSON(w, http.StatusOK, map[string]any{
				"status":    "ok",
				"timestamp": time.Now().UnixMilli(),
			})
		})

		r.Post("/login", authHandler.Login)
		r.Get("/posts", postHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Handler)
			r.Post("/logout", authHandler.Logout)
			r.Post("/posts", postHandler.Create)
			r.Delete("/posts/{id}", postHandler.Delete)
		})
	})

	r.Get("/*", staticHandler.ServeHTTP)

	if interval := cfg.SessionSweepInterval(); interval > 0 {
		cleanupJob := jobs.NewCleanupJob(sessionRepo, interval)
		cleanupJob.Start()
		defer cleanupJob.Stop()
	}

	server := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: config.ServerReadTimeout,
		IdleTimeout: config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
