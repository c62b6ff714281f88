package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment-pilot/apperrors"
	"comment-pilot/models"
)

func TestResolveByQueryRequiresQuery(t *testing.T) {
	svc := NewResolverService(&fakePlatform{})

	_, err := svc.ResolveByQuery(context.Background(), "   ", 10)
	assert.True(t, apperrors.IsValidation(err))
}

func TestResolveByQueryDeduplicates(t *testing.T) {
	platform := &fakePlatform{searchResults: []models.Video{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
		{ID: "a", Title: "first again"},
	}}

	videos, err := NewResolverService(platform).ResolveByQuery(context.Background(), "golang", 10)
	require.NoError(t, err)

	require.Len(t, videos, 2)
	assert.Equal(t, "a", videos[0].ID)
	assert.Equal(t, "b", videos[1].ID)
}

func TestResolveByURL(t *testing.T) {
	platform := &fakePlatform{videoByID: map[string]models.Video{
		"dQw4w9WgXcQ": {ID: "dQw4w9WgXcQ", Title: "a video"},
	}}
	svc := NewResolverService(platform)

	video, err := svc.ResolveByURL(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.ID)

	_, err = svc.ResolveByURL(context.Background(), "https://example.com/not-a-video")
	assert.True(t, apperrors.IsValidation(err))
}

func TestResolveChannelUploadsRequiresChannelID(t *testing.T) {
	_, err := ResolveChannelUploads("", 10)
	assert.True(t, apperrors.IsValidation(err))
}
