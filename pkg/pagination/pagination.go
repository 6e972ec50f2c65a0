package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxLimit = 100

const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

type Params struct {
	Page  int
	Limit int
	Sort  string
}

// Parse reads page/limit/sort query parameters. Page clamps to a minimum
// of 1, limit clamps to [1, MaxLimit]. Each resource keeps its own
// default page size, so the default limit is a call-site argument.
func Parse(c *gin.Context, defaultLimit int) Params {
	p := Params{
		Page:  1,
		Limit: defaultLimit,
		Sort:  SortNewest,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 1 {
			p.Page = page
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			p.Limit = limit
		}
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	sort := c.Query("sort")
	if sort == "" {
		sort = c.Query("sort_by")
	}
	if sort != "" {
		p.Sort = sort
	}

	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderBy resolves the sort option to an ORDER BY clause. Unrecognized
// values fall back to newest. Extra per-resource options (e.g. "views")
// come in via columns.
func (p Params) OrderBy(columns map[string]string) string {
	switch p.Sort {
	case SortNewest:
		return "created_at DESC"
	case SortOldest:
		return "created_at ASC"
	}
	if columns != nil {
		if col, ok := columns[p.Sort]; ok {
			return col
		}
	}
	return "created_at DESC"
}

type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewMeta(total int64, p Params) Meta {
	pages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		pages++
	}
	return Meta{
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: pages,
	}
}
