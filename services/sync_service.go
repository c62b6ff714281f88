package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-pilot/apperrors"
	"comment-pilot/config"
	"comment-pilot/eventbus"
	"comment-pilot/events"
	"comment-pilot/models"
)

// EngagementStore is the store slice sync needs.
type EngagementStore interface {
	ListSyncable(ctx context.Context, userID string) ([]models.PostedComment, error)
	UpdateEngagement(ctx context.Context, id primitive.ObjectID, userID string, likeCount int64) error
}

// SyncService batch-reconciles stored engagement counters against the
// platform on demand.
type SyncService struct {
	platform Platform
	store    EngagementStore
	bus      eventbus.Publisher
}

func NewSyncService(platform Platform, store EngagementStore, bus eventbus.Publisher) *SyncService {
	if bus == nil {
		bus = eventbus.Nop{}
	}
	return &SyncService{platform: platform, store: store, bus: bus}
}

// SyncedComment is one record's outcome: either freshly updated counters or
// the prior values when its fetch failed.
type SyncedComment struct {
	ID         primitive.ObjectID `json:"id"`
	LikeCount  int64              `json:"like_count"`
	ReplyCount int64              `json:"reply_count"`
	Updated    bool               `json:"updated"`
}

// SyncReport summarizes one sync pass.
type SyncReport struct {
	Total   int             `json:"total"`
	Updated int             `json:"updated"`
	Failed  int             `json:"failed"`
	Items   []SyncedComment `json:"items"`
}

// SyncAll fetches the current like count for each of the user's records that
// carries an external comment id, one concurrent task per record, join-all.
// A per-record failure keeps that record's prior values; the pass as a whole
// still succeeds with a possibly-partial updated set. Reply counts are not
// refreshed: the platform offers no per-comment reply-count lookup.
func (s *SyncService) SyncAll(ctx context.Context, userID string) (SyncReport, error) {
	records, err := s.store.ListSyncable(ctx, userID)
	if err != nil {
		return SyncReport{}, apperrors.NewPersistence("load syncable comments", err)
	}

	items := make([]SyncedComment, len(records))

	var wg sync.WaitGroup
	for i, record := range records {
		wg.Add(1)
		go func(i int, record models.PostedComment) {
			defer wg.Done()

			item := SyncedComment{
				ID:         record.ID,
				LikeCount:  record.LikeCount,
				ReplyCount: record.ReplyCount,
			}

			if record.ExternalCommentID != "" {
				likeCount, err := s.platform.CommentLikeCount(ctx, record.ExternalCommentID)
				if err == nil {
					if updErr := s.store.UpdateEngagement(ctx, record.ID, userID, likeCount); updErr == nil {
						item.LikeCount = likeCount
						item.Updated = true
					}
				}
			}

			items[i] = item
		}(i, record)
	}
	wg.Wait()

	report := SyncReport{Total: len(records), Items: items}
	for _, item := range items {
		if item.Updated {
			report.Updated++
		} else {
			report.Failed++
		}
	}

	event := events.NewEngagementSynced(userID, report.Total, report.Updated, report.Failed)
	if err := s.bus.Publish(ctx, events.TopicEngagementSynced, userID, event); err != nil {
		config.Logger().Warn("engagement.synced event not published", "user_id", userID, "error", err.Error())
	}

	return report, nil
}
