package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/constants"
	apierrors "github.com/campusinova/innovation-platform/internal/errors"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
	"github.com/campusinova/innovation-platform/internal/utils"
)

// RequireAuth verifies the bearer token and loads the corresponding user
// into the request context. A token that does not resolve to exactly one
// user rejects the request.
func RequireAuth(tokens *utils.JWTManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			apierrors.Unauthorized(c, "Invalid authentication token")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid authentication token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireTypes allows only the given account types through. Admins always
// pass.
func RequireTypes(allowed ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.Type == models.UserTypeAdmin {
			c.Next()
			return
		}

		for _, t := range allowed {
			if user.Type == t {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Insufficient privileges for this operation")
		c.Abort()
	}
}

// CurrentUser retrieves the authenticated user from the request context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
