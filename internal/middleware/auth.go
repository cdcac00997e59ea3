package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercode/careercode-api/internal/auth"
)

// CookieName is where the identity token travels.
const CookieName = "token"

// ContextEmailKey is where RequireToken stores the verified email for
// downstream handlers.
const ContextEmailKey = "userEmail"

// RequireToken verifies the identity token cookie before the handler runs.
// No cookie is 401, a cookie that fails verification (bad signature or
// expired) is 403. The request never reaches the handler with an
// unverified identity.
func RequireToken(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "unauthorized access",
			})
			return
		}

		email, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   true,
				"message": "forbidden access",
			})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
