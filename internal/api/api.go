// Package api holds the HTTP handlers for the recipe catalog service.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// clientID extracts the anonymous client key used to scope favorites and
// cooking history. The front end generates it once and sends it with every
// request; without it there is nothing to key the stores on.
func clientID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Client-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Client-ID header is required"})
		return "", false
	}
	return id, true
}

// positiveIntQuery parses a query parameter as a positive integer, falling
// back to def when absent or unparseable.
func positiveIntQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, false
	}
	return uint(n), true
}
