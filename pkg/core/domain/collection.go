package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection represents a named group of catalog products
type Collection struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Images      []ImageRef `json:"images"` // Handled as JSON text in the database
	Products    []Product  `json:"products,omitzero"` // nil when attached to a product
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CollectionInput carries the validated fields for a new collection
type CollectionInput struct {
	Name        string
	Description *string
	Images      []ImageRef
}

// CollectionPatch lists the fields a partial update may touch.
// Unset fields keep their stored value.
type CollectionPatch struct {
	Name        Optional[string]
	Description Optional[*string]
	Images      Optional[[]ImageRef]
}

// Apply merges the set fields of p into c.
func (p CollectionPatch) Apply(c *Collection) {
	if p.Name.Set {
		c.Name = p.Name.Value
	}
	if p.Description.Set {
		c.Description = p.Description.Value
	}
	if p.Images.Set {
		c.Images = p.Images.Value
	}
}

// CollectionFilter narrows collection listings
type CollectionFilter struct {
	Name string // case-insensitive substring
}

// CollectionStats aggregates the products of one collection
type CollectionStats struct {
	TotalProducts int             `json:"totalProducts"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	AveragePrice  decimal.Decimal `json:"averagePrice"`
}

// CollectionWithStats is the payload of the stats endpoint
type CollectionWithStats struct {
	Collection *Collection     `json:"collection"`
	Stats      CollectionStats `json:"stats"`
}

// ComputeStats sums product prices, counting a missing price as zero.
func ComputeStats(products []Product) CollectionStats {
	stats := CollectionStats{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		AveragePrice:  decimal.Zero,
	}
	for _, p := range products {
		if p.Price.Valid {
			stats.TotalValue = stats.TotalValue.Add(p.Price.Decimal)
		}
	}
	if stats.TotalProducts > 0 {
		stats.AveragePrice = stats.TotalValue.Div(decimal.NewFromInt(int64(stats.TotalProducts)))
	}
	return stats
}
