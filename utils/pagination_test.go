package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) Pagination {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return ParsePagination(c)
}

func TestParsePaginationDefaults(t *testing.T) {
	p := paginationFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Skip)
}

func TestParsePaginationClamps(t *testing.T) {
	p := paginationFor(t, "page=0&limit=500")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	p = paginationFor(t, "page=-3&limit=-1")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)
}

func TestParsePaginationSkip(t *testing.T) {
	p := paginationFor(t, "page=3&limit=25")
	assert.Equal(t, 50, p.Skip)
}
