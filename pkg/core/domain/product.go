package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item belonging to exactly one collection
type Product struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Image        []ImageRef          `json:"image"`      // Handled as JSON text in the database
	Dimensions   *Dimensions         `json:"dimensions"` // Handled as JSON text in the database
	Price        decimal.NullDecimal `json:"price"`
	CollectionID int64               `json:"collectionId"`
	IsAvailable  bool                `json:"isAvailable"`
	Collection   *Collection         `json:"collection,omitempty"` // Populated when preloaded
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// Dimensions of a physical product. No unit is implied.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// ProductInput carries the validated fields for a new product
type ProductInput struct {
	Title        string
	Description  *string
	Image        []ImageRef
	Dimensions   *Dimensions
	Price        decimal.NullDecimal
	CollectionID int64
	IsAvailable  *bool // nil means the default (true)
}

// ProductPatch lists the fields a partial update may touch
type ProductPatch struct {
	Title        Optional[string]
	Description  Optional[*string]
	Image        Optional[[]ImageRef]
	Dimensions   Optional[*Dimensions]
	Price        Optional[decimal.NullDecimal]
	CollectionID Optional[int64]
	IsAvailable  Optional[bool]
}

// Apply merges the set fields of p into prod.
func (p ProductPatch) Apply(prod *Product) {
	if p.Title.Set {
		prod.Title = p.Title.Value
	}
	if p.Description.Set {
		prod.Description = p.Description.Value
	}
	if p.Image.Set {
		prod.Image = p.Image.Value
	}
	if p.Dimensions.Set {
		prod.Dimensions = p.Dimensions.Value
	}
	if p.Price.Set {
		prod.Price = p.Price.Value
	}
	if p.CollectionID.Set {
		prod.CollectionID = p.CollectionID.Value
	}
	if p.IsAvailable.Set {
		prod.IsAvailable = p.IsAvailable.Value
	}
}

// ProductFilter narrows product listings. Nil fields do not filter.
type ProductFilter struct {
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	CollectionID *int64
	Title        string // case-insensitive substring
}
