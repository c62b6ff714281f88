package middleware

import (
	"github.com/gin-gonic/gin"

	"comment-pilot/cmd/api/auth"
)

const identityKey = "identity"

// SessionAuthMiddleware verifies the bearer session token and stores the
// caller's identity on the context. Requests without a valid token never
// reach a pipeline operation.
func SessionAuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		identity, err := jwtManager.Parse(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity stored by the middleware.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
