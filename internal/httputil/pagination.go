package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination bounds for list endpoints such as the application listing.
const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// ParsePagination parses and validates the offset and limit query parameters
// of a list request. Offset defaults to 0 and limit to defaultListLimit;
// limit is capped at maxListLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxListLimit)
	}

	return offset, limit, nil
}
