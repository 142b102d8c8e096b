package pagination

import (
	"math"

	"gorm.io/gorm"
)

// MaxLimit caps the page size a client may request.
const MaxLimit = 5000

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=5000"`
}

// Defaults fills in page 1 and defaultLimit when they are not provided.
func (p *PageRequest) Defaults(defaultLimit int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes where a page sits within the full result set.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewMeta computes page metadata for totalItems results.
func NewMeta(req PageRequest, totalItems int64) Meta {
	totalPages := 0
	if req.Limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(req.Limit)))
	}
	return Meta{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Limit:       req.Limit,
		HasNextPage: req.Page < totalPages,
		HasPrevPage: req.Page > 1,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}
