package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mainagideon/storefront-api/models"
)

// RequireAdminOrStaff gates privileged routes on the role level carried
// in the verified token claims. Runs after RequireAuth.
func RequireAdminOrStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		level, ok := UserLevel(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if level != models.LevelAdmin && level != models.LevelStaff {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin or staff access required"})
			return
		}

		ctx.Next()
	}
}
