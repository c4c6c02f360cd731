package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters.
// A zero Limit means the caller did not ask for a page.
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// Meta represents pagination metadata
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 20

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// Header names used to report paging metadata while keeping list bodies as plain arrays
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderTotalPages = "X-Total-Pages"
)

// GetParams extracts pagination parameters from request.
// Lists stay unpaged unless "page" or "limit" is present.
func GetParams(c *fiber.Ctx) *Params {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return &Params{}
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Paged reports whether the request asked for a page
func (p *Params) Paged() bool {
	return p.Limit > 0
}

// GetMeta calculates pagination metadata
func GetMeta(params *Params, total int64) *Meta {
	if !params.Paged() {
		return &Meta{Page: 1, Limit: int(total), Total: total, TotalPages: 1}
	}

	totalPages := int(total) / params.Limit
	if int(total)%params.Limit > 0 {
		totalPages++
	}

	return &Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

// SetHeaders writes the paging metadata as response headers
func SetHeaders(c *fiber.Ctx, params *Params, total int64) {
	meta := GetMeta(params, total)
	c.Set(HeaderTotalCount, strconv.FormatInt(meta.Total, 10))
	c.Set(HeaderTotalPages, strconv.Itoa(meta.TotalPages))
}
