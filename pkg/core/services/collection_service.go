package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

type CollectionService struct {
	repo ports.CollectionRepository
	notifier
}

func NewCollectionService(repo ports.CollectionRepository, events ports.EventPublisher, logger *zap.Logger) *CollectionService {
	return &CollectionService{
		repo:     repo,
		notifier: notifier{events: events, logger: logger},
	}
}

func (s *CollectionService) CreateCollection(ctx context.Context, in domain.CollectionInput) (*domain.Collection, error) {
	now := time.Now().UTC()
	collection := &domain.Collection{
		Name:        in.Name,
		Description: in.Description,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if collection.Images == nil {
		collection.Images = []domain.ImageRef{}
	}

	if err := s.repo.CreateCollection(ctx, collection); err != nil {
		return nil, err
	}

	// Reload so the response carries products like every other read
	created, err := s.repo.GetCollection(ctx, collection.ID)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.EntityCollection, domain.ActionCreated, created.ID, created)
	return created, nil
}

func (s *CollectionService) GetCollection(ctx context.Context, id int64) (*domain.Collection, error) {
	return s.repo.GetCollection(ctx, id)
}

func (s *CollectionService) UpdateCollection(ctx context.Context, id int64, patch domain.CollectionPatch) (*domain.Collection, error) {
	collection, err := s.repo.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(collection)
	collection.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateCollection(ctx, collection); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, domain.EntityCollection, domain.ActionUpdated, id, updated)
	return updated, nil
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, domain.EntityCollection, domain.ActionDeleted, id, nil)
	return nil
}

func (s *CollectionService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.ListCollections(ctx, domain.CollectionFilter{}, 0, 0)
}

func (s *CollectionService) SearchCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error) {
	return s.repo.ListCollections(ctx, filter, 0, 0)
}

func (s *CollectionService) ListCollectionsPaged(ctx context.Context, filter domain.CollectionFilter, req domain.PageRequest) (*domain.Page[domain.Collection], error) {
	collections, err := s.repo.ListCollections(ctx, filter, req.Limit, req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountCollections(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.Page[domain.Collection]{
		Data:       collections,
		Pagination: domain.NewPagination(req, total),
	}, nil
}

func (s *CollectionService) ListCollectionsWithProducts(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.ListCollectionsWithProducts(ctx)
}

func (s *CollectionService) GetCollectionStats(ctx context.Context, id int64) (*domain.CollectionWithStats, error) {
	collection, err := s.repo.GetCollection(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("collection stats: %w", err)
	}
	return &domain.CollectionWithStats{
		Collection: collection,
		Stats:      domain.ComputeStats(collection.Products),
	}, nil
}
