package generator

import (
	"context"
	"fmt"
	"sync"

	"comment-pilot/models"
)

// BatchItem is the settled outcome of one video's generation task.
type BatchItem struct {
	VideoID    string
	Comment    string
	Transcript string
	Err        error
}

// BatchResult reports every per-video outcome of a fan-out generation.
type BatchResult struct {
	Items []BatchItem
}

// Succeeded counts the items that generated a comment.
func (r BatchResult) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

// Summary renders the per-batch progress line, e.g. "8/10 generated".
func (r BatchResult) Summary() string {
	return fmt.Sprintf("%d/%d generated", r.Succeeded(), len(r.Items))
}

// Comments returns the successful items as a videoId -> comment map.
func (r BatchResult) Comments() map[string]string {
	out := make(map[string]string, len(r.Items))
	for _, item := range r.Items {
		if item.Err == nil {
			out[item.VideoID] = item.Comment
		}
	}
	return out
}

// Transcripts returns the transcripts fetched during the batch, keyed by
// videoId. Videos whose fetch failed or returned nothing are omitted.
func (r BatchResult) Transcripts() map[string]string {
	out := make(map[string]string)
	for _, item := range r.Items {
		if item.Transcript != "" {
			out[item.VideoID] = item.Transcript
		}
	}
	return out
}

// GenerateAll runs one generation task per video, all concurrently, and
// returns after every task has settled. A transcript fetch failure downgrades
// that video to metadata-only generation; a generation failure is recorded on
// its item and never aborts the siblings. Each goroutine writes only its own
// slot of the result slice.
func (g *Generator) GenerateAll(ctx context.Context, videos []models.Video, transcripts TranscriptFetcher, sentimentOf func(videoID string) models.Sentiment) BatchResult {
	items := make([]BatchItem, len(videos))

	var wg sync.WaitGroup
	for i, video := range videos {
		wg.Add(1)
		go func(i int, video models.Video) {
			defer wg.Done()

			item := BatchItem{VideoID: video.ID}

			if transcripts != nil {
				text, err := transcripts.Transcript(ctx, video.ID)
				if err == nil {
					item.Transcript = text
				}
			}

			tone := ToneConfig{Sentiment: sentimentOf(video.ID)}
			comment, err := g.GenerateOne(ctx, video, tone, item.Transcript)
			if err != nil {
				item.Err = err
			} else {
				item.Comment = comment
			}

			items[i] = item
		}(i, video)
	}
	wg.Wait()

	return BatchResult{Items: items}
}
