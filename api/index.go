package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/broker"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/services"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/logger"
)

var mux http.Handler

func init() {
	cfg := config.Load()

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}

	// Note: On Vercel, a local sqlite file is ephemeral; point DATABASE_URL at Turso or MySQL
	store, err := sqlstore.Open(context.Background(), cfg.DatabaseURL, sqlstore.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		panic(err)
	}

	events := broker.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	collectionService := services.NewCollectionService(store, events, appLogger)
	productService := services.NewProductService(store, events, appLogger)
	mux = handler.NewRouter(cfg, appLogger, store, collectionService, productService)
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
