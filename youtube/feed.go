package youtube

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"comment-pilot/apperrors"
	"comment-pilot/models"
)

const uploadsFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

// ChannelUploads resolves a channel's recent uploads through its public RSS
// feed. Costs no API quota and needs no access token; the feed carries only a
// subset of the descriptor fields.
func ChannelUploads(channelID string, limit int) ([]models.Video, error) {
	if channelID == "" {
		return nil, apperrors.NewValidation("channel id is required")
	}

	fp := gofeed.NewParser()
	feed, err := fp.ParseURL(fmt.Sprintf(uploadsFeedURL, channelID))
	if err != nil {
		return nil, apperrors.NewUpstream("uploads feed", err)
	}

	var videos []models.Video
	for _, item := range feed.Items {
		videoID, err := ExtractVideoID(item.Link)
		if err != nil {
			continue
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		videos = append(videos, models.Video{
			ID:           videoID,
			Title:        item.Title,
			Description:  item.Description,
			ChannelTitle: feed.Title,
			ChannelID:    channelID,
			ThumbnailURL: feedThumbnail(item),
			PublishedAt:  published,
		})
	}

	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

func feedThumbnail(item *gofeed.Item) string {
	if item.Image != nil {
		return item.Image.URL
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, group := range media["group"] {
			for _, thumb := range group.Children["thumbnail"] {
				if url := thumb.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}
	return ""
}
