package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"comment-pilot/models"
)

// PostedCommentRepository persists the durable record of posted comments.
// Every read and write is scoped by user_id: a user can only ever see or
// touch their own rows.
type PostedCommentRepository struct {
	col *mongo.Collection
}

func NewPostedCommentRepository(db *mongo.Database) *PostedCommentRepository {
	return &PostedCommentRepository{col: db.Collection("posted_comments")}
}

// Insert creates exactly one record per successful post. Engagement counters
// start at zero.
func (r *PostedCommentRepository) Insert(ctx context.Context, c *models.PostedComment) (primitive.ObjectID, error) {
	if c.PostedAt.IsZero() {
		c.PostedAt = time.Now()
	}
	c.LikeCount = 0
	c.ReplyCount = 0

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	c.ID = id
	return id, nil
}

// ListByUser returns all of the user's records, most recent first.
func (r *PostedCommentRepository) ListByUser(ctx context.Context, userID string) ([]models.PostedComment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PostedComment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSyncable returns the user's records carrying an external comment id;
// only those can be reconciled against the platform.
func (r *PostedCommentRepository) ListSyncable(ctx context.Context, userID string) ([]models.PostedComment, error) {
	filter := bson.M{
		"user_id":             userID,
		"external_comment_id": bson.M{"$nin": bson.A{"", nil}},
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PostedComment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEngagement writes a freshly synced like count and stamps
// last_synced_at. Reply counts are not refreshed by sync.
func (r *PostedCommentRepository) UpdateEngagement(ctx context.Context, id primitive.ObjectID, userID string, likeCount int64) error {
	now := time.Now()
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"like_count": likeCount, "last_synced_at": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetExternalCommentID attaches a late-arriving platform comment id to an
// existing record.
func (r *PostedCommentRepository) SetExternalCommentID(ctx context.Context, id primitive.ObjectID, userID, externalID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"external_comment_id": externalID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
