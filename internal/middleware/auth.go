package middleware

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/database"
	"github.com/sefraniabdou1937/backend-az/internal/utils"
)

const invalidTokenMessage = "Token invalide ou expiré"

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// AuthMiddleware checks for a valid bearer token and resolves its subject
// email to an existing user. A token whose user has been removed is rejected
// the same way as a forged or expired one. Handlers read user_id and
// user_email from the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortUnauthorized(c, "Authorization header must be in the format 'Bearer {token}'")
			return
		}

		email, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			abortUnauthorized(c, invalidTokenMessage)
			return
		}

		var userID int
		err = database.DB.QueryRow(`SELECT id FROM users WHERE email=$1`, email).Scan(&userID)
		if err != nil {
			if err == sql.ErrNoRows {
				abortUnauthorized(c, invalidTokenMessage)
				return
			}
			log.Printf("Error loading user for token subject: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading user"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}
