package domain

const (
	DefaultPage  = 1
	DefaultLimit = 3
	MaxLimit     = 100
)

// PageRequest is a validated page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// Offset is the number of rows skipped before this page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Pagination describes where a page sits in the full result set
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the metadata for req given the unpaged total.
func NewPagination(req PageRequest, total int64) Pagination {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// Page is one slice of a listing plus its metadata
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
