package services

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"comment-pilot/models"
)

// fakePlatform scripts the platform surface for service tests.
type fakePlatform struct {
	mu sync.Mutex

	searchResults []models.Video
	searchErr     error

	videoByID map[string]models.Video

	postErr     error
	postedTexts map[string]string

	likeCounts map[string]int64
	likeErr    map[string]error
}

func (f *fakePlatform) Search(ctx context.Context, query string, maxResults int) ([]models.Video, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if maxResults < len(f.searchResults) {
		return f.searchResults[:maxResults], nil
	}
	return f.searchResults, nil
}

func (f *fakePlatform) VideoByID(ctx context.Context, videoID string) (models.Video, error) {
	v, ok := f.videoByID[videoID]
	if !ok {
		return models.Video{}, errors.New("video not found")
	}
	return v, nil
}

func (f *fakePlatform) Transcript(ctx context.Context, videoID string) (string, error) {
	return "", errors.New("no captions track")
}

func (f *fakePlatform) PostComment(ctx context.Context, videoID, text string) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postedTexts == nil {
		f.postedTexts = map[string]string{}
	}
	f.postedTexts[videoID] = text
	return "ext-" + videoID, nil
}

func (f *fakePlatform) CommentLikeCount(ctx context.Context, commentID string) (int64, error) {
	if err := f.likeErr[commentID]; err != nil {
		return 0, err
	}
	return f.likeCounts[commentID], nil
}

// fakeCommentStore records inserts and engagement updates in memory.
type fakeCommentStore struct {
	mu sync.Mutex

	insertErr error
	inserted  []*models.PostedComment

	syncable    []models.PostedComment
	syncableErr error

	updateErr map[primitive.ObjectID]error
	updated   map[primitive.ObjectID]int64
}

func (f *fakeCommentStore) Insert(ctx context.Context, c *models.PostedComment) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, c)
	return primitive.NewObjectID(), nil
}

func (f *fakeCommentStore) ListSyncable(ctx context.Context, userID string) ([]models.PostedComment, error) {
	if f.syncableErr != nil {
		return nil, f.syncableErr
	}
	return f.syncable, nil
}

func (f *fakeCommentStore) UpdateEngagement(ctx context.Context, id primitive.ObjectID, userID string, likeCount int64) error {
	if err := f.updateErr[id]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[primitive.ObjectID]int64{}
	}
	f.updated[id] = likeCount
	return nil
}
