package main

import (
	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

func sampleProduct(title, description, image string, width, height, depth float64, price string) domain.Product {
	return domain.Product{
		Title:       title,
		Description: &description,
		Image:       []domain.ImageRef{domain.ImageRef("https://example.com/images/" + image)},
		Dimensions:  &domain.Dimensions{Width: width, Height: height, Depth: depth},
		Price:       decimal.NewNullDecimal(decimal.RequireFromString(price)),
		IsAvailable: true,
	}
}

func sampleCollection(name, description string, images []string, products ...domain.Product) domain.Collection {
	refs := make([]domain.ImageRef, 0, len(images))
	for _, img := range images {
		refs = append(refs, domain.ImageRef("https://example.com/images/"+img))
	}
	return domain.Collection{
		Name:        name,
		Description: &description,
		Images:      refs,
		Products:    products,
	}
}

func sampleCatalog() []domain.Collection {
	return []domain.Collection{
		sampleCollection("Modern Furniture", "Contemporary furniture pieces for modern homes",
			[]string{"modern-furniture-1.jpg", "modern-furniture-2.jpg"},
			sampleProduct("Modern Leather Sofa", "Contemporary 3-seater leather sofa with clean lines", "modern-leather-sofa.jpg", 220, 85, 95, "1299.99"),
			sampleProduct("Glass Coffee Table", "Minimalist glass coffee table with metal frame", "glass-coffee-table.jpg", 120, 45, 60, "299.99"),
		),
		sampleCollection("Vintage Classics", "Timeless vintage furniture with character",
			[]string{"vintage-1.jpg", "vintage-2.jpg"},
			sampleProduct("Antique Wooden Chair", "Handcrafted wooden chair with intricate details", "antique-wooden-chair.jpg", 50, 95, 55, "450.00"),
			sampleProduct("Vintage Side Table", "Classic side table with brass accents", "vintage-side-table.jpg", 45, 65, 45, "275.50"),
		),
		sampleCollection("Office Essentials", "Professional office furniture and accessories",
			[]string{"office-1.jpg", "office-2.jpg"},
			sampleProduct("Ergonomic Office Chair", "Adjustable office chair with lumbar support", "ergonomic-office-chair.jpg", 65, 120, 70, "599.99"),
			sampleProduct("Standing Desk", "Electric standing desk with memory settings", "standing-desk.jpg", 140, 120, 70, "899.99"),
		),
		sampleCollection("Outdoor Living", "Durable outdoor furniture for patios and gardens",
			[]string{"outdoor-1.jpg", "outdoor-2.jpg"},
			sampleProduct("Weather-Resistant Patio Set", "Complete 4-seater patio furniture set", "patio-set.jpg", 200, 75, 100, "799.99"),
			sampleProduct("Garden Bench", "Rustic wooden garden bench", "garden-bench.jpg", 120, 45, 40, "199.99"),
		),
	}
}
