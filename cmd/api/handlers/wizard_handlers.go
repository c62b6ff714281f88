package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-pilot/apperrors"
	"comment-pilot/cmd/api/dto"
	"comment-pilot/config"
	"comment-pilot/eventbus"
	"comment-pilot/generator"
	"comment-pilot/models"
	"comment-pilot/services"
	"comment-pilot/wizard"
)

// sessionFor loads the caller's session from the path id, scoped to the
// authenticated user so sessions are never visible across accounts.
func sessionFor(c *gin.Context, store *wizard.Store) (*wizard.Session, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, false
	}
	sess, err := store.Get(c.Param("id"), identity.UserID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return sess, true
}

func respondSession(c *gin.Context, sess *wizard.Session) {
	c.JSON(http.StatusOK, dto.NewWizardSessionDTO(sess.Snapshot()))
}

// CreateSessionHandler godoc
// @Summary      Create a wizard session
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  dto.WizardSessionDTO
// @Router       /wizard/sessions [post]
func CreateSessionHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := requireIdentity(c)
		if !ok {
			return
		}
		sess := store.Create(identity.UserID)
		c.JSON(http.StatusCreated, dto.NewWizardSessionDTO(sess.Snapshot()))
	}
}

func GetSessionHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		respondSession(c, sess)
	}
}

func DiscardSessionHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := requireIdentity(c)
		if !ok {
			return
		}
		if err := store.Discard(c.Param("id"), identity.UserID); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AddVideoHandler adds a video to the selection, either from a search result
// descriptor or by resolving a pasted watch URL first.
func AddVideoHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}

		var req dto.AddVideoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: %v", err))
			return
		}

		var video models.Video
		switch {
		case req.Video != nil && req.Video.ID != "":
			video = *req.Video
		case req.URL != "":
			platform, _, ok := platformFor(c)
			if !ok {
				return
			}
			resolved, err := services.NewResolverService(platform).ResolveByURL(c.Request.Context(), req.URL)
			if err != nil {
				respondError(c, err)
				return
			}
			video = resolved
		default:
			respondError(c, apperrors.NewValidation("either a video descriptor or a url is required"))
			return
		}

		added := sess.AddVideo(video)
		c.JSON(http.StatusOK, gin.H{
			"added":   added,
			"session": dto.NewWizardSessionDTO(sess.Snapshot()),
		})
	}
}

func RemoveVideoHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		sess.RemoveVideo(c.Param("videoId"))
		respondSession(c, sess)
	}
}

func SetSentimentHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}

		var req dto.SetSentimentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: %v", err))
			return
		}
		sentiment, err := models.ParseSentiment(req.Sentiment)
		if err != nil {
			respondError(c, err)
			return
		}
		if !sess.SetSentiment(c.Param("videoId"), sentiment) {
			respondError(c, apperrors.NewNotFound("video", c.Param("videoId")))
			return
		}
		respondSession(c, sess)
	}
}

func NextStageHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		if err := sess.Next(); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, sess)
	}
}

func PrevStageHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		sess.Prev()
		respondSession(c, sess)
	}
}

func ResetSessionHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		sess.Reset()
		respondSession(c, sess)
	}
}

// StartQuickHandler godoc
// @Summary      Run the quick path
// @Description  Locks the quick mode and generates one comment per selected
// @Description  video in a single parallel batch. Safe to retrigger: a
// @Description  finished run returns its settled report again.
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  wizard.QuickReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /wizard/sessions/{id}/quick [post]
func StartQuickHandler(store *wizard.Store, gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		platform, _, ok := platformFor(c)
		if !ok {
			return
		}

		if sess.Mode() == wizard.ModeUnset {
			if err := sess.StartQuick(); err != nil {
				respondError(c, err)
				return
			}
		}
		settle := config.GetConfig().Wizard.QuickSettleDelay()
		report, err := sess.RunQuickGeneration(c.Request.Context(), gen, platform, settle)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"report":  report,
			"session": dto.NewWizardSessionDTO(sess.Snapshot()),
		})
	}
}

func StartCustomizeHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		if err := sess.StartCustomize(); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, sess)
	}
}

// DefineHandler records the customize-path tone parameters.
func DefineHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}

		var req dto.DefineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: %v", err))
			return
		}
		var sentiment models.Sentiment
		if req.Sentiment != "" {
			parsed, err := models.ParseSentiment(req.Sentiment)
			if err != nil {
				respondError(c, err)
				return
			}
			sentiment = parsed
		}
		if err := sess.Define(req.TemplateID, req.CustomTemplate, sentiment, req.AdditionalContext); err != nil {
			respondError(c, err)
			return
		}
		respondSession(c, sess)
	}
}

// GenerateCurrentHandler generates a comment for the focused video on the
// customize path and advances the focus, moving to review after the last
// one.
func GenerateCurrentHandler(store *wizard.Store, gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		platform, _, ok := platformFor(c)
		if !ok {
			return
		}

		comment, advanced, err := sess.GenerateCurrent(c.Request.Context(), gen, platform)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"comment":  comment,
			"advanced": advanced,
			"session":  dto.NewWizardSessionDTO(sess.Snapshot()),
		})
	}
}

// RegenerateHandler replaces one video's generated comment, discarding any
// edit the user made to it.
func RegenerateHandler(store *wizard.Store, gen *generator.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}

		comment, err := sess.Regenerate(c.Request.Context(), gen, c.Param("videoId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"comment": comment,
			"session": dto.NewWizardSessionDTO(sess.Snapshot()),
		})
	}
}

func EditCommentHandler(store *wizard.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}

		var req dto.EditCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.NewValidation("invalid request body: %v", err))
			return
		}
		if !sess.SetEdited(c.Param("videoId"), req.Text) {
			respondError(c, apperrors.NewNotFound("video", c.Param("videoId")))
			return
		}
		respondSession(c, sess)
	}
}

// PostCommentHandler godoc
// @Summary      Post the edited comment for one video
// @Description  Posts to the platform, then records the result. A tracking
// @Description  failure does not undo the post; it is reported as a warning.
// @Tags         wizard
// @Produce      json
// @Success      200  {object}  dto.PostCommentResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /wizard/sessions/{id}/videos/{videoId}/post [post]
func PostCommentHandler(store *wizard.Store, repo services.PostedCommentInserter, bus eventbus.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessionFor(c, store)
		if !ok {
			return
		}
		platform, _, ok := platformFor(c)
		if !ok {
			return
		}

		posting := services.NewPostingService(platform, repo, bus)
		result, err := posting.PostOne(c.Request.Context(), sess, c.Param("videoId"))
		if err != nil {
			respondError(c, err)
			return
		}

		resp := dto.PostCommentResponse{
			Success:           true,
			ExternalCommentID: result.ExternalCommentID,
			Tracked:           result.Tracked,
		}
		if result.TrackingErr != nil {
			resp.TrackingWarning = "comment posted but could not be saved for tracking"
		}
		c.JSON(http.StatusOK, resp)
	}
}
