package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"comment-pilot/apperrors"
)

// ExtractBearerToken pulls the session token out of the Authorization
// header. Every failure is an AuthError so the API surface maps them to 401
// uniformly.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperrors.NewAuth("missing authorization header")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", apperrors.NewAuth("authorization header is not a bearer token")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.NewAuth("empty bearer token")
	}
	return token, nil
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
