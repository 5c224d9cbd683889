package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// ParsePagination clamps page to >= 1 and limit to [1,100] (default 20).
func ParsePagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit == 0 {
		limit = 20
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	return Pagination{Page: page, Limit: limit, Skip: (page - 1) * limit}
}
