package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/book_library/internal/config"
	"github.com/Skotchmaster/book_library/internal/es"
	"github.com/Skotchmaster/book_library/internal/handlers"
	"github.com/Skotchmaster/book_library/internal/logging"
	authmw "github.com/Skotchmaster/book_library/internal/middleware/auth"
	"github.com/Skotchmaster/book_library/internal/middleware/loggingmw"
	"github.com/Skotchmaster/book_library/internal/mykafka"
	"github.com/Skotchmaster/book_library/internal/repo"
	httpserver "github.com/Skotchmaster/book_library/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var prod *mykafka.Producer
	if cfg.KafkaAddress != "" {
		prod = mykafka.NewProducer([]string{cfg.KafkaAddress})
	}

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	jwtSecret := []byte(cfg.JWTSecret)
	r := repo.New(db)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Guard:          &authmw.Guard{JWTSecret: jwtSecret},
		AuthHandler:    &handlers.AuthHandler{Repo: r, JWTSecret: jwtSecret, TokenTTL: cfg.TokenTTL, BcryptCost: cfg.BcryptCost, Producer: prod},
		UserHandler:    &handlers.UserHandler{Repo: r, BcryptCost: cfg.BcryptCost, Producer: prod},
		LibraryHandler: &handlers.LibraryHandler{Repo: r, Producer: prod},
		CatalogHandler: &handlers.CatalogHandler{Repo: r},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: cfg.ESIndex},
		AdminHandler:   &handlers.AdminHandler{Repo: r, Producer: prod, ES: esClient, ESIndex: cfg.ESIndex},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
