package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// ParsePageRequest reads page and limit query values.
// Absent or unparseable values fall back to the defaults; parsed values out of range are
// rejected rather than clamped.
func ParsePageRequest(pageRaw, limitRaw string) (domain.PageRequest, error) {
	req := domain.PageRequest{
		Page:  parseIntOr(pageRaw, domain.DefaultPage),
		Limit: parseIntOr(limitRaw, domain.DefaultLimit),
	}
	if req.Page < 1 {
		return req, domain.ErrInvalidPage
	}
	if req.Limit < 1 || req.Limit > domain.MaxLimit {
		return req, domain.ErrInvalidLimit
	}
	// The offset must fit in an int
	if req.Page-1 > math.MaxInt/req.Limit {
		return req, domain.ErrInvalidPage
	}
	return req, nil
}

func parseIntOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return v
}
