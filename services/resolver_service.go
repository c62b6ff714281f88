package services

import (
	"context"
	"strings"

	"comment-pilot/apperrors"
	"comment-pilot/config"
	"comment-pilot/models"
	"comment-pilot/youtube"
)

// ResolverService turns a user's topic or URL input into candidate video
// descriptors, de-duplicated by video id.
type ResolverService struct {
	platform Platform
}

func NewResolverService(platform Platform) *ResolverService {
	return &ResolverService{platform: platform}
}

// ResolveByQuery searches the platform and returns up to maxResults videos
// in the platform's relevance order.
func (s *ResolverService) ResolveByQuery(ctx context.Context, query string, maxResults int) ([]models.Video, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidation("search query is required")
	}
	if maxResults <= 0 {
		maxResults = config.GetConfig().YouTube.MaxResultsOrDefault()
	}
	if maxResults > 50 {
		maxResults = 50
	}

	videos, err := s.platform.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	return dedupeByID(videos), nil
}

// ResolveByURL extracts the video id from any accepted URL shape and fetches
// its descriptor.
func (s *ResolverService) ResolveByURL(ctx context.Context, url string) (models.Video, error) {
	videoID, err := youtube.ExtractVideoID(url)
	if err != nil {
		return models.Video{}, err
	}
	return s.platform.VideoByID(ctx, videoID)
}

// ResolveChannelUploads lists a channel's recent uploads from its public RSS
// feed, spending no API quota. It needs no platform client, so it is a
// package function rather than a ResolverService method.
func ResolveChannelUploads(channelID string, limit int) ([]models.Video, error) {
	videos, err := youtube.ChannelUploads(channelID, limit)
	if err != nil {
		return nil, err
	}
	return dedupeByID(videos), nil
}

func dedupeByID(videos []models.Video) []models.Video {
	seen := make(map[string]bool, len(videos))
	out := videos[:0]
	for _, v := range videos {
		if seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		out = append(out, v)
	}
	return out
}
