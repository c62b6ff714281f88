package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-pilot/apperrors"
	"comment-pilot/config"
	"comment-pilot/eventbus"
	"comment-pilot/events"
	"comment-pilot/models"
	"comment-pilot/wizard"
)

// Platform minimum/maximum comment lengths, validated before any network
// call.
const (
	MinCommentRunes = 10
	MaxCommentRunes = 10000
)

// PostedCommentInserter is the store slice posting needs.
type PostedCommentInserter interface {
	Insert(ctx context.Context, c *models.PostedComment) (primitive.ObjectID, error)
}

// PostingService posts one edited comment at a time to the platform and then
// records the result for analytics. No automatic batch posting: each post is
// a deliberate user action against a rate-limited API.
type PostingService struct {
	platform Platform
	store    PostedCommentInserter
	bus      eventbus.Publisher
}

func NewPostingService(platform Platform, store PostedCommentInserter, bus eventbus.Publisher) *PostingService {
	if bus == nil {
		bus = eventbus.Nop{}
	}
	return &PostingService{platform: platform, store: store, bus: bus}
}

// PostResult reports the two independent steps of a post: the external
// insert (authoritative for the user) and the local tracking write.
type PostResult struct {
	VideoID           string
	ExternalCommentID string
	Record            *models.PostedComment

	// Tracked is false when the external post succeeded but the durable
	// record write failed. The post is not rolled back; TrackingErr carries
	// the persistence failure for a soft warning.
	Tracked     bool
	TrackingErr error
}

// PostOne validates the edited text, posts it, and records the outcome. On a
// platform failure no session state changes. A video already posted in this
// session is rejected up front: the platform is not idempotent and a repeat
// post would create a second external comment.
func (s *PostingService) PostOne(ctx context.Context, sess *wizard.Session, videoID string) (PostResult, error) {
	video, ok := sess.Video(videoID)
	if !ok {
		return PostResult{}, apperrors.NewValidation("video %q is not part of the selection", videoID)
	}
	if sess.IsPosted(videoID) {
		return PostResult{}, apperrors.NewValidation("video %q was already posted in this session", videoID)
	}

	text, ok := sess.EditedComment(videoID)
	if !ok {
		return PostResult{}, apperrors.NewValidation("no comment text for video %q", videoID)
	}
	if err := ValidateCommentText(text); err != nil {
		return PostResult{}, err
	}

	externalID, err := s.platform.PostComment(ctx, videoID, text)
	if err != nil {
		return PostResult{}, err
	}

	result := PostResult{VideoID: videoID, ExternalCommentID: externalID, Tracked: true}

	record := &models.PostedComment{
		UserID:            sess.UserID(),
		VideoID:           videoID,
		VideoTitle:        video.Title,
		VideoURL:          video.WatchURL(),
		ChannelTitle:      video.ChannelTitle,
		CommentText:       text,
		Sentiment:         sess.RecordSentiment(videoID),
		ExternalCommentID: externalID,
	}
	if _, err := s.store.Insert(ctx, record); err != nil {
		// The external post is authoritative and is never unwound; the
		// missing record only degrades analytics.
		result.Tracked = false
		result.TrackingErr = apperrors.NewPersistence("posted comment insert", err)
		config.Logger().Warn("posted comment not tracked",
			"video_id", videoID, "user_id", sess.UserID(), "error", err.Error())
	} else {
		result.Record = record
	}

	sess.MarkPosted(videoID)

	event := events.NewCommentPosted(sess.UserID(), videoID, externalID, record.Sentiment, result.Tracked)
	if err := s.bus.Publish(ctx, events.TopicCommentPosted, videoID, event); err != nil {
		config.Logger().Warn("comment.posted event not published", "video_id", videoID, "error", err.Error())
	}

	return result, nil
}

// ValidateCommentText enforces the platform's length bounds on the edited
// text before any network call.
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewValidation("comment text is empty")
	}
	n := utf8.RuneCountInString(text)
	if n < MinCommentRunes {
		return apperrors.NewValidation("comment must be at least %d characters", MinCommentRunes)
	}
	if n > MaxCommentRunes {
		return apperrors.NewValidation("comment must be at most %d characters", MaxCommentRunes)
	}
	return nil
}
