package middleware

import (
	"gramzo/models"

	"github.com/gin-gonic/gin"
)

const authContextKey = "authContext"

// AuthContextMiddleware populates the caller identity from request headers.
// The platform has no token auth: the headers are the trust boundary, and
// this middleware is the only place that reads them. The role is normalized
// once here; everything downstream compares canonical Role values.
func AuthContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := models.AuthContext{
			Role:    models.NormalizeRole(c.GetHeader("x-user-role")),
			AgentID: c.GetHeader("x-agent-id"),
			UserID:  c.GetHeader("x-user-id"),
			Phone:   c.GetHeader("x-user-phone"),
		}
		c.Set(authContextKey, actor)
		c.Next()
	}
}

// GetAuthContext returns the caller identity established by the middleware.
func GetAuthContext(c *gin.Context) models.AuthContext {
	if v, ok := c.Get(authContextKey); ok {
		if actor, ok := v.(models.AuthContext); ok {
			return actor
		}
	}
	return models.AuthContext{Role: models.RoleUser}
}
