package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

type ProductService struct {
	repo ports.ProductRepository
	notifier
}

func NewProductService(repo ports.ProductRepository, events ports.EventPublisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: notifier{events: events, logger: logger},
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Dimensions:   in.Dimensions,
		Price:        in.Price,
		CollectionID: in.CollectionID,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if product.Image == nil {
		product.Image = []domain.ImageRef{}
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	// Reload to attach the collection
	created, err := s.repo.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.EntityProduct, domain.ActionCreated, created.ID, created)
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	return s.save(ctx, product)
}

// ToggleAvailability flips isAvailable and returns the saved product.
func (s *ProductService) ToggleAvailability(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.IsAvailable = !product.IsAvailable
	return s.save(ctx, product)
}

func (s *ProductService) save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	// The collection may have changed; reload it with the row
	updated, err := s.repo.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.EntityProduct, domain.ActionUpdated, updated.ID, updated)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, domain.EntityProduct, domain.ActionDeleted, id, nil)
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, domain.ProductFilter{}, 0, 0)
}

func (s *ProductService) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, filter, 0, 0)
}

func (s *ProductService) SearchProductsPaged(ctx context.Context, filter domain.ProductFilter, req domain.PageRequest) (*domain.Page[domain.Product], error) {
	products, err := s.repo.ListProducts(ctx, filter, req.Limit, req.Offset())
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Product]{
		Data:       products,
		Pagination: domain.NewPagination(req, count),
	}, nil
}

func (s *ProductService) ListProductsByCollection(ctx context.Context, collectionID int64) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, domain.ProductFilter{CollectionID: &collectionID}, 0, 0)
}

func (s *ProductService) ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, domain.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, 0, 0)
}
