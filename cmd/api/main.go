package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/ClarkyAU/passforge/internal/config"
	"github.com/ClarkyAU/passforge/internal/handler"
	"github.com/ClarkyAU/passforge/internal/middleware"
	"github.com/ClarkyAU/passforge/internal/repository"
	"github.com/ClarkyAU/passforge/internal/service"
	"github.com/ClarkyAU/passforge/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	cache := wordlist.NewCache(wordsLoader(cfg))
	cache.Prime()

	// The store is optional: without a database the server still
	// generates, it just cannot serve named wordlists.
	var store *repository.WordlistRepository
	if cfg.DatabaseDSN == "" {
		slog.Warn("DATABASE_DSN not set, wordlist management routes disabled")
	} else if db, err := repository.NewDB(cfg.DatabaseDSN); err != nil {
		slog.Warn("database connection failed, wordlist management routes disabled", "error", err)
	} else {
		store = repository.NewWordlistRepository(db)
	}

	genHandler := handler.NewGeneratorHandler(
		service.NewGeneratorService(),
		service.NewPassphraseService(cache, store),
	)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(20, 40))
		r.Post("/api/v1/generate/password", genHandler.HandleGeneratePassword)
		r.Post("/api/v1/generate/passphrase", genHandler.HandleGeneratePassphrase)
	})

	if store != nil {
		authHandler := handler.NewAuthHandler(
			service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry),
		)
		wordlistHandler := handler.NewWordlistHandler(service.NewWordlistService(store))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWTSecret))
			r.Get("/api/v1/wordlists", wordlistHandler.HandleList)
			r.Get("/api/v1/wordlists/{name}", wordlistHandler.HandleGet)
			r.Put("/api/v1/wordlists/{name}", wordlistHandler.HandleSave)
			r.Delete("/api/v1/wordlists/{name}", wordlistHandler.HandleDelete)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cache.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// wordsLoader picks the default wordlist source: a local file when
// WORDLIST_PATH is set, a remote list when WORDLIST_URL is set, and the
// embedded list otherwise.
func wordsLoader(cfg config.Config) wordlist.Loader {
	switch {
	case cfg.WordlistPath != "":
		return func(ctx context.Context) ([]string, error) {
			return wordlist.LoadFile(cfg.WordlistPath)
		}
	case cfg.WordlistURL != "":
		client := &http.Client{Timeout: 30 * time.Second}
		return func(ctx context.Context) ([]string, error) {
			return wordlist.FetchURL(ctx, client, cfg.WordlistURL)
		}
	default:
		return func(ctx context.Context) ([]string, error) {
			return wordlist.Default(), nil
		}
	}
}
