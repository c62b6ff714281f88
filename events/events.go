package events

import (
	"time"

	"github.com/google/uuid"

	"comment-pilot/models"
)

// EventType identifies an analytics event on the bus.
type EventType string

const (
	CommentPosted    EventType = "comment.posted"
	EngagementSynced EventType = "engagement.synced"
)

// Topics, one per event type.
const (
	TopicCommentPosted    = "comment_pilot.comment.posted"
	TopicEngagementSynced = "comment_pilot.engagement.synced"
)

// BaseEvent carries the envelope fields shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

func newBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    "api",
	}
}

// CommentPostedEvent is published after a comment lands on the platform.
// Tracked reports whether the durable record write also succeeded.
type CommentPostedEvent struct {
	BaseEvent
	UserID            string           `json:"user_id"`
	VideoID           string           `json:"video_id"`
	ExternalCommentID string           `json:"external_comment_id"`
	Sentiment         models.Sentiment `json:"sentiment"`
	Tracked           bool             `json:"tracked"`
}

func NewCommentPosted(userID, videoID, externalCommentID string, sentiment models.Sentiment, tracked bool) CommentPostedEvent {
	return CommentPostedEvent{
		BaseEvent:         newBase(CommentPosted),
		UserID:            userID,
		VideoID:           videoID,
		ExternalCommentID: externalCommentID,
		Sentiment:         sentiment,
		Tracked:           tracked,
	}
}

// EngagementSyncedEvent is published after a sync pass over the user's
// records.
type EngagementSyncedEvent struct {
	BaseEvent
	UserID  string `json:"user_id"`
	Total   int    `json:"total"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

func NewEngagementSynced(userID string, total, updated, failed int) EngagementSyncedEvent {
	return EngagementSyncedEvent{
		BaseEvent: newBase(EngagementSynced),
		UserID:    userID,
		Total:     total,
		Updated:   updated,
		Failed:    failed,
	}
}
