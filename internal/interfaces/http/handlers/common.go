package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// parseUintParam reads a numeric path parameter, rejecting the request
// with a 400 when it is missing or malformed.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}

// respondUpstreamError maps upstream client failures onto gateway
// status codes. Anything the backend did not explicitly reject surfaces
// as a bad gateway.
func respondUpstreamError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case upstream.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMessage,
		})
	case upstream.IsUnauthorized(err):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream request failed",
		})
	}
}
