// Package validation turns raw request values into typed domain values.
// Nothing here touches storage; every function is pure.
package validation

import (
	"fmt"
	"strconv"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
)

// ParseID parses a path or query identifier as a base-10 integer.
// Range and existence are not checked here.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidIdentifier, raw)
	}
	return id, nil
}
