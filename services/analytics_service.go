package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-pilot/apperrors"
	"comment-pilot/models"
)

// AnalyticsStore is the store slice the analytics surface needs.
type AnalyticsStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.PostedComment, error)
	SetExternalCommentID(ctx context.Context, id primitive.ObjectID, userID, externalID string) error
}

// AnalyticsService reads the user's posted-comment history and derives
// aggregate engagement numbers.
type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Stats aggregates the engagement counters over a user's history.
type Stats struct {
	TotalComments  int     `json:"total_comments"`
	TotalLikes     int64   `json:"total_likes"`
	TotalReplies   int64   `json:"total_replies"`
	EngagementRate float64 `json:"engagement_rate"`
}

// List returns the user's history, most recent first.
func (s *AnalyticsService) List(ctx context.Context, userID string) ([]models.PostedComment, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewPersistence("list posted comments", err)
	}
	return records, nil
}

// ComputeStats derives the aggregate numbers. Engagement rate is the mean of
// likes plus replies per posted comment.
func (s *AnalyticsService) ComputeStats(ctx context.Context, userID string) (Stats, error) {
	records, err := s.List(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalComments: len(records)}
	for _, r := range records {
		stats.TotalLikes += r.LikeCount
		stats.TotalReplies += r.ReplyCount
	}
	if stats.TotalComments > 0 {
		stats.EngagementRate = float64(stats.TotalLikes+stats.TotalReplies) / float64(stats.TotalComments)
	}
	return stats, nil
}

// AttachExternalID stores a late-arriving platform comment id on a record.
func (s *AnalyticsService) AttachExternalID(ctx context.Context, hexID, userID, externalID string) error {
	if externalID == "" {
		return apperrors.NewValidation("external comment id is required")
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return apperrors.NewValidation("malformed comment id %q", hexID)
	}
	if err := s.store.SetExternalCommentID(ctx, id, userID, externalID); err != nil {
		return apperrors.NewNotFound("posted comment", hexID)
	}
	return nil
}
