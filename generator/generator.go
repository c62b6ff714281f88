package generator

import (
	"context"
	"strings"

	"comment-pilot/apperrors"
	"comment-pilot/config"
	"comment-pilot/models"
)

// TextProvider is the generative-text collaborator: a pure function from
// prompt to text. Prompt construction is owned here, not by the provider.
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranscriptFetcher supplies a best-effort caption transcript for a video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// ToneConfig controls generation style for a single request. Template and
// Sentiment are mutually exclusive in the customize path; the quick path uses
// Sentiment only.
type ToneConfig struct {
	Template          string
	Sentiment         models.Sentiment
	AdditionalContext string
}

// Generator produces one comment per video, single-shot or as a parallel
// batch.
type Generator struct {
	provider        TextProvider
	descLimit       int
	transcriptLimit int
}

func New(provider TextProvider) *Generator {
	cfg := config.GetConfig().Generator
	return &Generator{
		provider:        provider,
		descLimit:       cfg.DescriptionLimit(),
		transcriptLimit: cfg.TranscriptLimit(),
	}
}

// GenerateOne builds the prompt for a video and returns the generated comment
// text. transcript may be empty; description and transcript are truncated to
// the configured bounds before the request is built.
func (g *Generator) GenerateOne(ctx context.Context, video models.Video, tone ToneConfig, transcript string) (string, error) {
	if video.Title == "" {
		return "", apperrors.NewValidation("video title is required")
	}

	prompt := g.buildPrompt(video, tone, transcript)
	text, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return "", apperrors.NewUpstream("comment generation", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.NewUpstream("comment generation", errEmptyCompletion)
	}
	return text, nil
}
