package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestComputeStats(t *testing.T) {
	t.Run("no products", func(t *testing.T) {
		stats := ComputeStats(nil)
		if stats.TotalProducts != 0 || !stats.TotalValue.IsZero() || !stats.AveragePrice.IsZero() {
			t.Errorf("stats = %+v", stats)
		}
	})

	t.Run("null price counts as zero", func(t *testing.T) {
		stats := ComputeStats([]Product{{Price: price(10)}, {Price: price(20)}, {}})
		if stats.TotalProducts != 3 {
			t.Errorf("totalProducts = %d", stats.TotalProducts)
		}
		if !stats.TotalValue.Equal(decimal.NewFromInt(30)) {
			t.Errorf("totalValue = %s", stats.TotalValue)
		}
		if !stats.AveragePrice.Equal(decimal.NewFromInt(10)) {
			t.Errorf("averagePrice = %s", stats.AveragePrice)
		}
	})

	t.Run("decimal prices", func(t *testing.T) {
		stats := ComputeStats([]Product{
			{Price: decimal.NewNullDecimal(decimal.RequireFromString("1299.99"))},
			{Price: decimal.NewNullDecimal(decimal.RequireFromString("199.99"))},
		})
		if stats.TotalValue.String() != "1499.98" || stats.AveragePrice.String() != "749.99" {
			t.Errorf("stats = %s / %s", stats.TotalValue, stats.AveragePrice)
		}
	})
}

func TestStatsJSONUsesNumbers(t *testing.T) {
	b, err := json.Marshal(ComputeStats([]Product{{Price: price(10)}}))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"totalProducts":1,"totalValue":10,"averagePrice":10}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}

func TestCollectionPatchApply(t *testing.T) {
	desc := "old"
	c := Collection{Name: "Old", Description: &desc, Images: []ImageRef{"a.jpg"}}

	CollectionPatch{Name: Some("New")}.Apply(&c)
	if c.Name != "New" || c.Description == nil || len(c.Images) != 1 {
		t.Errorf("only the name should change: %+v", c)
	}

	CollectionPatch{Description: Some[*string](nil)}.Apply(&c)
	if c.Description != nil {
		t.Error("explicit nil should clear the description")
	}
}

func TestProductPatchApply(t *testing.T) {
	p := Product{Title: "Desk", IsAvailable: true, Price: price(100), CollectionID: 1}

	ProductPatch{
		IsAvailable:  Some(false),
		CollectionID: Some[int64](2),
		Price:        Some(decimal.NullDecimal{}),
	}.Apply(&p)

	if p.Title != "Desk" {
		t.Errorf("title changed: %s", p.Title)
	}
	if p.IsAvailable || p.CollectionID != 2 || p.Price.Valid {
		t.Errorf("patch not applied: %+v", p)
	}
}
