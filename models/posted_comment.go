package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostedComment is the durable record of one successfully posted comment.
// Collection: posted_comments. Rows are scoped by user_id on every access and
// are never deleted by the pipeline.
type PostedComment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	VideoID      string             `bson:"video_id" json:"video_id"`
	VideoTitle   string             `bson:"video_title" json:"video_title"`
	VideoURL     string             `bson:"video_url" json:"video_url"`
	ChannelTitle string             `bson:"channel_title" json:"channel_title"`
	CommentText  string             `bson:"comment_text" json:"comment_text"`
	Sentiment    Sentiment          `bson:"sentiment" json:"sentiment"`

	// ExternalCommentID is the platform-side id of the posted comment. Empty
	// when the platform response did not carry one.
	ExternalCommentID string `bson:"external_comment_id" json:"external_comment_id"`

	// Engagement counters start at zero and are mutated only by sync.
	LikeCount  int64 `bson:"like_count" json:"like_count"`
	ReplyCount int64 `bson:"reply_count" json:"reply_count"`

	PostedAt     time.Time  `bson:"posted_at" json:"posted_at"`
	LastSyncedAt *time.Time `bson:"last_synced_at,omitempty" json:"last_synced_at,omitempty"`
}
