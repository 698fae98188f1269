package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/config"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/handler"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/repository"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/service"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/session"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/storage"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	mongo, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		slog.Error("mongo unavailable", "uri", cfg.MongoURI, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongo.Close(context.Background()); err != nil {
			slog.Error("closing mongo", "error", err)
		}
	}()
	slog.Info("connected to mongo", "db", cfg.MongoDB)

	sessionStore, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.SessionTTL)
	if err != nil {
		slog.Error("redis unavailable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	defer sessionStore.Close()
	slog.Info("connected to redis", "addr", cfg.RedisAddr)

	renderer, err := handler.NewRenderer()
	if err != nil {
		slog.Error("parsing templates", "error", err)
		os.Exit(1)
	}

	movieSvc := service.NewMovieService(repository.NewMovieRepository(mongo.Collection("movies")))
	authSvc := service.NewAuthService(repository.NewUserRepository(mongo.Collection("users")))
	sessions := session.NewManager(sessionStore, cfg.SessionTTL)

	h := handler.New(movieSvc, authSvc, renderer)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: h.Routes(sessions),
	}

	go func() {
		slog.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
