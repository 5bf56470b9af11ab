package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// CollectionRepository defines storage operations for collections.
// Lookups by id return domain.ErrNotFound when no row matches.
type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection *domain.Collection) error
	GetCollection(ctx context.Context, id int64) (*domain.Collection, error) // products preloaded
	UpdateCollection(ctx context.Context, collection *domain.Collection) error
	DeleteCollection(ctx context.Context, id int64) error // cascades to products
	ListCollections(ctx context.Context, filter domain.CollectionFilter, limit, offset int) ([]domain.Collection, error)
	CountCollections(ctx context.Context, filter domain.CollectionFilter) (int64, error)
	ListCollectionsWithProducts(ctx context.Context) ([]domain.Collection, error)
} // CollectionRepository ends here

// ProductRepository defines storage operations for products.
// A limit of 0 on List means no limit.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error) // collection preloaded
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error)
	CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error)
}

// CatalogRepository is the full persistence handle built once at startup
type CatalogRepository interface {
	CollectionRepository
	ProductRepository
	Ping(ctx context.Context) error
	Close() error
}

// EventPublisher announces committed catalog changes
type EventPublisher interface {
	Publish(ctx context.Context, event domain.CatalogEvent) error
	Close() error
}

// CollectionService defines business logic for collections
type CollectionService interface {
	CreateCollection(ctx context.Context, in domain.CollectionInput) (*domain.Collection, error)
	GetCollection(ctx context.Context, id int64) (*domain.Collection, error)
	UpdateCollection(ctx context.Context, id int64, patch domain.CollectionPatch) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	SearchCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error)
	ListCollectionsPaged(ctx context.Context, filter domain.CollectionFilter, req domain.PageRequest) (*domain.Page[domain.Collection], error)
	ListCollectionsWithProducts(ctx context.Context) ([]domain.Collection, error)
	GetCollectionStats(ctx context.Context, id int64) (*domain.CollectionWithStats, error)
}

// ProductService defines business logic for products
type ProductService interface {
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	ToggleAvailability(ctx context.Context, id int64) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	SearchProductsPaged(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) (*domain.Page[domain.Product], error)
	ListProductsByCollection(ctx context.Context, collectionID int64) ([]domain.Product, error)
	ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error)
}
