package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"showtime/config"
	"showtime/database"
	movieRepo "showtime/database/repository/movie"
	"showtime/handlers"
	"showtime/middleware"
	"showtime/routes"
	"showtime/services/movie"
	"showtime/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := movieRepo.NewMongoMovieRepo()

	// services.
	movieService := &movie.DefaultMovieService{
		Repo:     repo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.MovieCacheTTL) * time.Second,
	}
	movieHandler := handlers.NewMovieHandler(movieService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetMoviesHandler:    movieHandler.GetMoviesHandler,
		GetMovieByIDHandler: movieHandler.GetMovieByIDHandler,
		BookMovieHandler:    movieHandler.BookMovieHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
