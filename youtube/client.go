package youtube

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"comment-pilot/apperrors"
	"comment-pilot/config"
	"comment-pilot/models"
)

// Client wraps the YouTube Data API v3 for the operations the pipeline
// consumes: search, video lookup, captions, comment insert, like-count fetch.
// A Client is bound to one user's OAuth access token.
type Client struct {
	svc         *youtube.Service
	quotaSubstr string
}

// NewClient builds a client from the user's OAuth access token.
func NewClient(ctx context.Context, accessToken string) (*Client, error) {
	if accessToken == "" {
		return nil, apperrors.NewAuth("missing platform access token")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := youtube.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, apperrors.NewUpstream("youtube client init", err)
	}
	return &Client{
		svc:         svc,
		quotaSubstr: strings.ToLower(config.GetConfig().YouTube.QuotaSubstring()),
	}, nil
}

// Search returns up to maxResults videos ranked by relevance.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]models.Video, error) {
	call := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		MaxResults(int64(maxResults)).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, c.mapError("search", err)
	}

	videos := make([]models.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, models.Video{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ChannelID:    item.Snippet.ChannelId,
			ThumbnailURL: mediumThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  parsePublishedAt(item.Snippet.PublishedAt),
		})
	}
	return videos, nil
}

// VideoByID fetches a single video descriptor with view statistics.
func (c *Client) VideoByID(ctx context.Context, videoID string) (models.Video, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return models.Video{}, c.mapError("video lookup", err)
	}
	if len(resp.Items) == 0 {
		return models.Video{}, apperrors.NewNotFound("video", videoID)
	}

	item := resp.Items[0]
	v := models.Video{
		ID:          item.Id,
		PublishedAt: time.Time{},
	}
	if item.Snippet != nil {
		v.Title = item.Snippet.Title
		v.Description = item.Snippet.Description
		v.ChannelTitle = item.Snippet.ChannelTitle
		v.ChannelID = item.Snippet.ChannelId
		v.ThumbnailURL = mediumThumbnail(item.Snippet.Thumbnails)
		v.PublishedAt = parsePublishedAt(item.Snippet.PublishedAt)
	}
	if item.Statistics != nil {
		v.ViewCount = int64(item.Statistics.ViewCount)
	}
	return v, nil
}

// PostComment inserts a top-level comment and returns the platform comment id.
func (c *Client) PostComment(ctx context.Context, videoID, text string) (string, error) {
	thread := &youtube.CommentThread{
		Snippet: &youtube.CommentThreadSnippet{
			VideoId: videoID,
			TopLevelComment: &youtube.Comment{
				Snippet: &youtube.CommentSnippet{TextOriginal: text},
			},
		},
	}

	resp, err := c.svc.CommentThreads.Insert([]string{"snippet"}, thread).
		Context(ctx).
		Do()
	if err != nil {
		return "", c.mapError("comment insert", err)
	}

	if resp.Snippet != nil && resp.Snippet.TopLevelComment != nil && resp.Snippet.TopLevelComment.Id != "" {
		return resp.Snippet.TopLevelComment.Id, nil
	}
	return resp.Id, nil
}

// CommentLikeCount fetches the current like count of a posted comment.
func (c *Client) CommentLikeCount(ctx context.Context, commentID string) (int64, error) {
	resp, err := c.svc.Comments.List([]string{"snippet"}).
		Id(commentID).
		Context(ctx).
		Do()
	if err != nil {
		return 0, c.mapError("comment lookup", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return 0, apperrors.NewNotFound("comment", commentID)
	}
	return resp.Items[0].Snippet.LikeCount, nil
}

// mapError normalizes Data API failures into the pipeline's error taxonomy.
// Quota detection matches a 403 against a configured message substring; the
// upstream error shape is version-dependent, so the heuristic stays
// configurable.
func (c *Client) mapError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusForbidden && strings.Contains(strings.ToLower(gerr.Message), c.quotaSubstr):
			return &apperrors.QuotaExceededError{Cause: err}
		case gerr.Code == http.StatusUnauthorized:
			return apperrors.NewAuth("platform rejected the access token")
		case gerr.Code == http.StatusNotFound:
			return apperrors.NewNotFound(op+" target", "")
		}
	}
	return apperrors.NewUpstream(op, err)
}

func mediumThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

func parsePublishedAt(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}
