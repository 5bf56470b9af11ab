package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

func (s *Store) CreateCollection(ctx context.Context, c *domain.Collection) error {
	images, err := domain.EncodeImages(c.Images)
	if err != nil {
		return err
	}

	query := `INSERT INTO collections (name, description, images, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query, c.Name, toNullString(c.Description), images, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (s *Store) GetCollection(ctx context.Context, id int64) (*domain.Collection, error) {
	var row collectionRow
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = ?`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	collections := []domain.Collection{row.toDomain()}
	if err := s.preloadProducts(ctx, collections); err != nil {
		return nil, err
	}
	return &collections[0], nil
}

func (s *Store) UpdateCollection(ctx context.Context, c *domain.Collection) error {
	images, err := domain.EncodeImages(c.Images)
	if err != nil {
		return err
	}

	query := `UPDATE collections SET name = ?, description = ?, images = ?, updated_at = ? WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, c.Name, toNullString(c.Description), images, c.UpdatedAt, c.ID); err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	return nil
}

func (s *Store) DeleteCollection(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return requireAffected(res, "collection", id)
}

func (s *Store) ListCollections(ctx context.Context, filter domain.CollectionFilter, limit, offset int) ([]domain.Collection, error) {
	where, args := collectionWhere(filter)
	query := `SELECT ` + collectionColumns + ` FROM collections` + where + ` ORDER BY id` + limitClause(limit, offset)
	return s.selectCollections(ctx, query, args...)
}

func (s *Store) CountCollections(ctx context.Context, filter domain.CollectionFilter) (int64, error) {
	where, args := collectionWhere(filter)
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM collections`+where, args...); err != nil {
		return 0, fmt.Errorf("count collections: %w", err)
	}
	return count, nil
}

// ListCollectionsWithProducts returns only collections owning at least one product.
func (s *Store) ListCollectionsWithProducts(ctx context.Context) ([]domain.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections
			  WHERE EXISTS (SELECT 1 FROM products WHERE products.collection_id = collections.id)
			  ORDER BY id`
	return s.selectCollections(ctx, query)
}

func (s *Store) selectCollections(ctx context.Context, query string, args ...interface{}) ([]domain.Collection, error) {
	var rows []collectionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select collections: %w", err)
	}

	collections := make([]domain.Collection, 0, len(rows))
	for _, row := range rows {
		collections = append(collections, row.toDomain())
	}
	if err := s.preloadProducts(ctx, collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// preloadProducts fills Products on every collection with a single IN query.
func (s *Store) preloadProducts(ctx context.Context, collections []domain.Collection) error {
	if len(collections) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(collections))
	index := make(map[int64]int, len(collections))
	for i, c := range collections {
		ids = append(ids, c.ID)
		index[c.ID] = i
	}

	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE collection_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return err
	}

	var rows []productRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("preload products: %w", err)
	}
	for _, row := range rows {
		i := index[row.CollectionID]
		collections[i].Products = append(collections[i].Products, row.toDomain())
	}
	return nil
}

func collectionWhere(f domain.CollectionFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Name != "" {
		conditions = append(conditions, "LOWER(name) LIKE ? ESCAPE '!'")
		args = append(args, containsPattern(f.Name))
	}

	return whereClause(conditions), args
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

func limitClause(limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
}

// likeEscaper escapes LIKE wildcards for ESCAPE '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern matches term literally anywhere in the value. Use with ESCAPE '!'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func requireAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
