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

	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/broker"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/services"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/logger"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize Repository
	store, err := sqlstore.Open(context.Background(), cfg.DatabaseURL, sqlstore.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	// Initialize Event Publisher
	events := broker.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer events.Close()
	if len(cfg.Kafka.Brokers) > 0 {
		appLogger.Info("Publishing catalog events",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newHandler(cfg, appLogger, store, events),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		appLogger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

// newHandler wires services and routes on top of an open store.
func newHandler(cfg *config.Config, appLogger *zap.Logger, store ports.CatalogRepository, events ports.EventPublisher) http.Handler {
	collectionService := services.NewCollectionService(store, events, appLogger)
	productService := services.NewProductService(store, events, appLogger)
	return handler.NewRouter(cfg, appLogger, store, collectionService, productService)
}
