package middleware

import (
	"context"
	"net/http"
	"strings"

	"backend/internal/app/auth"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (*auth.Actor, error)
}

// AuthRequired resolves the bearer token into an actor and aborts with 401
// when the header is absent or the token does not resolve. Tokens are issued
// externally to this middleware; it only consumes them.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a bearer token"})
			return
		}

		actor, err := resolver.ResolveToken(c.Request.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// CurrentActor returns the actor the auth middleware attached to the request.
func CurrentActor(c *gin.Context) *auth.Actor {
	value, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, _ := value.(*auth.Actor)
	return actor
}
