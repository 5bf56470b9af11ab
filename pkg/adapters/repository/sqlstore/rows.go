package sqlstore

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

const (
	collectionColumns = `id, name, description, images, created_at, updated_at`
	productColumns    = `id, title, description, image, dimensions, price, collection_id, is_available, created_at, updated_at`
)

type collectionRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Images      sql.NullString `db:"images"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r collectionRow) toDomain() domain.Collection {
	return domain.Collection{
		ID:          r.ID,
		Name:        r.Name,
		Description: nullableString(r.Description),
		Images:      domain.DecodeImages(r.Images.String),
		Products:    []domain.Product{},
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type productRow struct {
	ID           int64               `db:"id"`
	Title        string              `db:"title"`
	Description  sql.NullString      `db:"description"`
	Image        sql.NullString      `db:"image"`
	Dimensions   sql.NullString      `db:"dimensions"`
	Price        decimal.NullDecimal `db:"price"`
	CollectionID int64               `db:"collection_id"`
	IsAvailable  bool                `db:"is_available"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:           r.ID,
		Title:        r.Title,
		Description:  nullableString(r.Description),
		Image:        domain.DecodeImages(r.Image.String),
		Dimensions:   decodeDimensions(r.Dimensions),
		Price:        r.Price,
		CollectionID: r.CollectionID,
		IsAvailable:  r.IsAvailable,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// decodeDimensions tolerates rows holding invalid JSON by reporting no dimensions.
func decodeDimensions(s sql.NullString) *domain.Dimensions {
	if !s.Valid || s.String == "" || s.String == "null" {
		return nil
	}
	var d domain.Dimensions
	if err := json.Unmarshal([]byte(s.String), &d); err != nil {
		return nil
	}
	return &d
}

func encodeDimensions(d *domain.Dimensions) (sql.NullString, error) {
	if d == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
