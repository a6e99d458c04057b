package v1

import (
	"strconv"

	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// caller returns the authenticated user id and role set by the auth
// middleware.
func caller(c *gin.Context) (id, role string) {
	return c.GetString(string(domain.KeyUserID)), c.GetString(string(domain.KeyUserRole))
}

// parsePaging reads page/size query params. Page numbers are zero-based;
// size defaults to 20.
func parsePaging(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	return page, size
}
