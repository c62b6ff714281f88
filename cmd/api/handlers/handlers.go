package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-pilot/apperrors"
	"comment-pilot/cmd/api/auth"
	"comment-pilot/cmd/api/middleware"
	"comment-pilot/cmd/internal/logger"
	"comment-pilot/youtube"
)

// respondError maps the pipeline error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var (
		validationErr  *apperrors.ValidationError
		authErr        *apperrors.AuthError
		notFoundErr    *apperrors.NotFoundError
		quotaErr       *apperrors.QuotaExceededError
		upstreamErr    *apperrors.UpstreamError
		persistenceErr *apperrors.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": quotaErr.Error()})
	case errors.As(err, &upstreamErr):
		logger.Log.Errorf("upstream failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "the video platform is currently unavailable"})
	case errors.As(err, &persistenceErr):
		logger.Log.Errorf("persistence failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage operation failed"})
	default:
		logger.Log.Errorf("unhandled failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requireIdentity fetches the authenticated identity or aborts with 401.
func requireIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		auth.AbortWithUnauthorized(c, apperrors.NewAuth("not authenticated"))
		return auth.Identity{}, false
	}
	return identity, true
}

// platformFor builds a platform client bound to the caller's access token.
func platformFor(c *gin.Context) (*youtube.Client, auth.Identity, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, auth.Identity{}, false
	}

	client, err := youtube.NewClient(c.Request.Context(), identity.AccessToken)
	if err != nil {
		respondError(c, err)
		return nil, auth.Identity{}, false
	}
	return client, identity, true
}
