package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/config"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, logger *zap.Logger, db Pinger, collections ports.CollectionService, products ports.ProductService) http.Handler {
	// Initialize Handlers
	h := NewHTTPHandler(db, logger)
	ch := NewCollectionHandler(collections, logger)
	ph := NewProductHandler(products, logger)

	// Initialize Middleware
	mw := NewMiddleware(cfg, logger)

	// Setup Router
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /{$}", h.Hello)
	mux.HandleFunc("GET /healthz", h.Healthz)

	// Collection Routes
	mux.HandleFunc("POST /api/collections", ch.CreateCollection)
	mux.HandleFunc("GET /api/collections", ch.ListCollections)
	mux.HandleFunc("GET /api/collections/search", ch.SearchCollections)
	mux.HandleFunc("GET /api/collections/search-paged", ch.ListCollectionsPaged)
	mux.HandleFunc("GET /api/collections/with-products", ch.ListCollectionsWithProducts)
	mux.HandleFunc("GET /api/collections/{id}", ch.GetCollection)
	mux.HandleFunc("GET /api/collections/{id}/stats", ch.GetCollectionStats)
	mux.HandleFunc("PUT /api/collections/{id}", ch.UpdateCollection)
	mux.HandleFunc("DELETE /api/collections/{id}", ch.DeleteCollection)

	// Product Routes
	mux.HandleFunc("POST /api/products", ph.CreateProduct)
	mux.HandleFunc("GET /api/products", ph.ListProducts)
	mux.HandleFunc("GET /api/products/search", ph.SearchProducts)
	mux.HandleFunc("GET /api/products/search-paged", ph.SearchProductsPaged)
	mux.HandleFunc("GET /api/products/by-price-range", ph.ListProductsByPriceRange)
	mux.HandleFunc("GET /api/products/by-collection/{collectionId}", ph.ListProductsByCollection)
	mux.HandleFunc("GET /api/products/{id}", ph.GetProduct)
	mux.HandleFunc("PUT /api/products/{id}", ph.UpdateProduct)
	mux.HandleFunc("POST /api/products/{id}/toggle-availability", ph.ToggleAvailability)
	mux.HandleFunc("DELETE /api/products/{id}", ph.DeleteProduct)

	return mw.Chain(mux)
}
