package services

import (
	"context"

	"comment-pilot/models"
)

// Platform is the slice of the video-hosting platform the pipeline consumes.
// The production implementation is youtube.Client, bound to one user's
// access token.
type Platform interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.Video, error)
	VideoByID(ctx context.Context, videoID string) (models.Video, error)
	Transcript(ctx context.Context, videoID string) (string, error)
	PostComment(ctx context.Context, videoID, text string) (string, error)
	CommentLikeCount(ctx context.Context, commentID string) (int64, error)
}
