package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

func (s *Store) CreateProduct(ctx context.Context, p *domain.Product) error {
	image, dims, err := encodeProductColumns(p)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (title, description, image, dimensions, price, collection_id, is_available, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		p.Title, toNullString(p.Description), image, dims, p.Price,
		p.CollectionID, p.IsAvailable, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	products := []domain.Product{row.toDomain()}
	if err := s.preloadCollections(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *domain.Product) error {
	image, dims, err := encodeProductColumns(p)
	if err != nil {
		return err
	}

	query := `UPDATE products
			  SET title = ?, description = ?, image = ?, dimensions = ?, price = ?, collection_id = ?, is_available = ?, updated_at = ?
			  WHERE id = ?`
	_, err = s.db.ExecContext(ctx, query,
		p.Title, toNullString(p.Description), image, dims, p.Price,
		p.CollectionID, p.IsAvailable, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireAffected(res, "product", id)
}

func (s *Store) ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	where, args := productWhere(filter)
	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY id` + limitClause(limit, offset)

	var rows []productRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}
	if err := s.preloadCollections(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CountProducts(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	where, args := productWhere(filter)
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`+where, args...); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// preloadCollections attaches the owning collection to each product.
// The attached collections do not carry their own products.
func (s *Store) preloadCollections(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[int64]bool)
	var ids []int64
	for _, p := range products {
		if !seen[p.CollectionID] {
			seen[p.CollectionID] = true
			ids = append(ids, p.CollectionID)
		}
	}

	query, args, err := sqlx.In(`SELECT `+collectionColumns+` FROM collections WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	var rows []collectionRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("preload collections: %w", err)
	}

	byID := make(map[int64]*domain.Collection, len(rows))
	for _, row := range rows {
		c := row.toDomain()
		c.Products = nil
		byID[c.ID] = &c
	}
	for i := range products {
		products[i].Collection = byID[products[i].CollectionID]
	}
	return nil
}

func productWhere(f domain.ProductFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.MinPrice != nil {
		conditions = append(conditions, "price >= ?")
		args = append(args, f.MinPrice.InexactFloat64())
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "price <= ?")
		args = append(args, f.MaxPrice.InexactFloat64())
	}
	if f.CollectionID != nil {
		conditions = append(conditions, "collection_id = ?")
		args = append(args, *f.CollectionID)
	}
	if f.Title != "" {
		conditions = append(conditions, "LOWER(title) LIKE ? ESCAPE '!'")
		args = append(args, containsPattern(f.Title))
	}

	return whereClause(conditions), args
}

func encodeProductColumns(p *domain.Product) (string, sql.NullString, error) {
	image, err := domain.EncodeImages(p.Image)
	if err != nil {
		return "", sql.NullString{}, err
	}
	dims, err := encodeDimensions(p.Dimensions)
	if err != nil {
		return "", sql.NullString{}, err
	}
	return image, dims, nil
}
