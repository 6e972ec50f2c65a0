package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(t *testing.T, query string, defaultLimit int) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var p Params
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		p = Parse(c, defaultLimit)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test"+query, nil)
	router.ServeHTTP(w, req)

	return p
}

func TestParse_Defaults(t *testing.T) {
	p := parseQuery(t, "", 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, SortNewest, p.Sort)
}

func TestParse_LimitClampedHigh(t *testing.T) {
	p := parseQuery(t, "?limit=500", 10)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestParse_LimitClampedLow(t *testing.T) {
	p := parseQuery(t, "?limit=0", 10)
	assert.Equal(t, 1, p.Limit)

	p = parseQuery(t, "?limit=-5", 10)
	assert.Equal(t, 1, p.Limit)
}

func TestParse_PageClamped(t *testing.T) {
	p := parseQuery(t, "?page=0", 10)
	assert.Equal(t, 1, p.Page)

	p = parseQuery(t, "?page=-3", 10)
	assert.Equal(t, 1, p.Page)
}

func TestParse_SortByAlias(t *testing.T) {
	p := parseQuery(t, "?sort_by=oldest", 10)
	assert.Equal(t, SortOldest, p.Sort)
}

func TestOffset(t *testing.T) {
	p := Params{Page: 2, Limit: 5}
	assert.Equal(t, 5, p.Offset())

	p = Params{Page: 1, Limit: 20}
	assert.Equal(t, 0, p.Offset())
}

func TestOrderBy_Fallback(t *testing.T) {
	p := Params{Sort: "trending"}
	assert.Equal(t, "created_at DESC", p.OrderBy(nil))
}

func TestOrderBy_Extra(t *testing.T) {
	p := Params{Sort: "views"}
	assert.Equal(t, "views DESC", p.OrderBy(map[string]string{"views": "views DESC"}))
}

func TestOrderBy_Oldest(t *testing.T) {
	p := Params{Sort: SortOldest}
	assert.Equal(t, "created_at ASC", p.OrderBy(nil))
}

func TestNewMeta_Pages(t *testing.T) {
	// 12 matching records with limit 5 span 3 pages
	meta := NewMeta(12, Params{Page: 2, Limit: 5})
	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.Limit)
	assert.Equal(t, 3, meta.Pages)
}

func TestNewMeta_ExactDivision(t *testing.T) {
	meta := NewMeta(20, Params{Page: 1, Limit: 10})
	assert.Equal(t, 2, meta.Pages)
}

func TestNewMeta_Empty(t *testing.T) {
	meta := NewMeta(0, Params{Page: 1, Limit: 10})
	assert.Equal(t, 0, meta.Pages)
}
