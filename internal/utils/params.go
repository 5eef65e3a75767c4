package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseInt32Param reads the named path parameter as a signed 32-bit integer
func ParseInt32Param(c *gin.Context, name string) (int32, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(value), true
}
