package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-pilot/apperrors"
	"comment-pilot/cmd/api/dto"
	"comment-pilot/eventbus"
	"comment-pilot/repositories"
	"comment-pilot/services"
)

// ListCommentsHandler godoc
// @Summary      List posted comments
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  models.PostedComment
// @Router       /comments [get]
func ListCommentsHandler(repo *repositories.PostedCommentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := requireIdentity(c)
		if !ok {
			return
		}
		analytics := services.NewAnalyticsService(repo)
		comments, err := analytics.List(c.Request.Context(), identity.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"comments": comments})
	}
}

// UpdateCommentHandler attaches a platform comment id to a record that was
// stored without one, making it eligible for engagement sync.
func UpdateCommentHandler(repo *repositories.PostedCommentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := requireIdentity(c)
		if !ok {
			return
		}

		var req dto.UpdateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: %v", err))
			return
		}
		analytics := services.NewAnalyticsService(repo)
		if err := analytics.AttachExternalID(c.Request.Context(), c.Param("id"), identity.UserID, req.ExternalCommentID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// StatsHandler returns aggregate engagement stats for the user's history.
func StatsHandler(repo *repositories.PostedCommentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := requireIdentity(c)
		if !ok {
			return
		}
		analytics := services.NewAnalyticsService(repo)
		stats, err := analytics.ComputeStats(c.Request.Context(), identity.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// SyncEngagementHandler godoc
// @Summary      Refresh engagement counters
// @Description  Fetches the current like count for every tracked comment
// @Description  and reports per-record outcomes. On-demand only.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  services.SyncReport
// @Router       /analytics/sync [post]
func SyncEngagementHandler(repo *repositories.PostedCommentRepository, bus eventbus.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		platform, identity, ok := platformFor(c)
		if !ok {
			return
		}
		sync := services.NewSyncService(platform, repo, bus)
		report, err := sync.SyncAll(c.Request.Context(), identity.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
