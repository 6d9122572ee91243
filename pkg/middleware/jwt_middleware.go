package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pricepulse/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Invalid or expired token")
			c.Abort()
			return
		}

		utils.SetPrincipal(c, utils.Principal{UserID: userID, Role: claims.Role})
		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {

	return func(c *gin.Context) {
		p, ok := utils.PrincipalFrom(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if p.Role == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, utils.CodeForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}
