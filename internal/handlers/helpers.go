package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the id the auth middleware stored in the context. A
// missing or mistyped value means the route was wired without the middleware;
// the request is aborted.
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}

	userID, ok := value.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return userID, true
}
