package middleware

import (
	"net/http"
	"strings"

	"studypath-be/internal/jwt"
	"studypath-be/internal/repository"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers
const (
	UserKey   = "user"
	UserIDKey = "userID"
)

// AuthMiddleware resolves the bearer token to a User record and injects it
// into the request context. Requests with a missing, invalid, or expired
// token are rejected with 401.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header",
			})
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			c.Abort()
			return
		}

		// The token may outlive the account it was issued for
		user, err := userRepo.FindByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
