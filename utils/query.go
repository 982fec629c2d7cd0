package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt64 reads a non-negative integer query parameter, falling back on
// absent, unparsable or negative values.
func QueryInt64(c *gin.Context, key string, fallback int64) int64 {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
