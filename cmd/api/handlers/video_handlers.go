package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"comment-pilot/models"
	"comment-pilot/services"
)

// SearchVideosHandler godoc
// @Summary      Search videos
// @Description  Resolve a topic query into candidate videos, relevance-ranked
// @Tags         videos
// @Param        query        query  string  true   "Search query"
// @Param        max_results  query  int     false  "Max results (1..50)"
// @Produce      json
// @Success      200  {array}  models.Video
// @Router       /videos/search [get]
func SearchVideosHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		platform, _, ok := platformFor(c)
		if !ok {
			return
		}

		maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "0"))
		resolver := services.NewResolverService(platform)
		videos, err := resolver.ResolveByQuery(c.Request.Context(), c.Query("query"), maxResults)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"videos": videos})
	}
}

// VideoByURLHandler resolves a pasted watch URL into a descriptor plus a
// best-effort transcript; a transcript failure does not fail the lookup.
func VideoByURLHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		platform, _, ok := platformFor(c)
		if !ok {
			return
		}

		resolver := services.NewResolverService(platform)
		video, err := resolver.ResolveByURL(c.Request.Context(), c.Query("url"))
		if err != nil {
			respondError(c, err)
			return
		}

		transcript, err := platform.Transcript(c.Request.Context(), video.ID)
		if err != nil {
			transcript = ""
		}
		c.JSON(http.StatusOK, gin.H{"video": video, "transcript": transcript})
	}
}

// ChannelUploadsHandler lists a channel's recent uploads from its public RSS
// feed.
func ChannelUploadsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requireIdentity(c); !ok {
			return
		}

		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		videos, err := services.ResolveChannelUploads(c.Param("id"), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"videos": videos})
	}
}

// TemplatesHandler returns the canned templates and the sentiment
// vocabulary.
func TemplatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"templates":  models.Templates(),
			"sentiments": models.AllSentiments(),
		})
	}
}
