package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// ParseProductFilter builds a product filter from query values.
// Numeric options that are absent, empty or unparseable do not filter.
func ParseProductFilter(q url.Values) domain.ProductFilter {
	f := domain.ProductFilter{
		MinPrice: parseOptionalDecimal(q.Get("minPrice")),
		MaxPrice: parseOptionalDecimal(q.Get("maxPrice")),
		Title:    strings.TrimSpace(q.Get("title")),
	}
	if raw := strings.TrimSpace(q.Get("collectionId")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.CollectionID = &id
		}
	}
	return f
}

// ParseCollectionFilter builds a collection filter from query values.
func ParseCollectionFilter(q url.Values) domain.CollectionFilter {
	return domain.CollectionFilter{Name: strings.TrimSpace(q.Get("name"))}
}

// ParsePriceRange reads the two mandatory bounds of a price range query.
func ParsePriceRange(q url.Values) (decimal.Decimal, decimal.Decimal, error) {
	lo := parseOptionalDecimal(q.Get("minPrice"))
	hi := parseOptionalDecimal(q.Get("maxPrice"))
	if lo == nil || hi == nil {
		return decimal.Zero, decimal.Zero, domain.ErrMissingRangeBound
	}
	return *lo, *hi, nil
}

func parseOptionalDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}
