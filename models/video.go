package models

import "time"

// Video is an immutable descriptor of a platform video. Identity is ID.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ChannelTitle string    `json:"channel_title"`
	ChannelID    string    `json:"channel_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
}

// WatchURL returns the canonical watch page URL for the video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}
