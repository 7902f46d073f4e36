package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "current_user"

// Identity resolves the caller's display name for the "Me" owner filter.
// The name comes from the configured header when present, otherwise from the
// single-tenant fallback user. No authentication happens here; downstream
// code receives identity as an explicit value, never as ambient state.
func Identity(header, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.GetHeader(header))
		if name == "" {
			name = fallback
		}
		c.Set(CurrentUserKey, name)
		c.Next()
	}
}

// CurrentUser returns the display name resolved by Identity.
func CurrentUser(c *gin.Context) string {
	return c.GetString(CurrentUserKey)
}
