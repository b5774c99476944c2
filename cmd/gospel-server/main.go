package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dfryer1193/gospel-cms/gospel/application"
	"github.com/dfryer1193/gospel-cms/gospel/persistence"
	"github.com/dfryer1193/gospel-cms/internal/config"
	"github.com/dfryer1193/gospel-cms/internal/middleware"
	"github.com/dfryer1193/gospel-cms/internal/rest"
	gh "github.com/dfryer1193/gospel-cms/shared/github"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v68/github"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize dependencies
	ghClient := github.NewClient(nil).WithAuthToken(cfg.GithubToken)
	files := gh.NewGithubFileRepository(ghClient, cfg.RepoOwner, cfg.RepoName)

	store := persistence.NewGithubPostStore(files, cfg.StorePath)
	media := application.NewMediaUploader(files, cfg.WebsiteURL, cfg.UploadFolder)
	service := application.NewPostService(store, media, cfg.OnUploadFailure == config.UploadFailurePropagate)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(gin.CustomRecovery(middleware.HandlePanics()))
	// The client app is served from another origin.
	engine.Use(cors.Default())

	rest.NewApi(engine, service, files.RepoFullName())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("repo", files.RepoFullName()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
