package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"comment-pilot/apperrors"
	"comment-pilot/generator"
	"comment-pilot/models"
)

// fakeGen drives the orchestrator without a real text provider. failFor
// marks video ids whose generation should fail.
type fakeGen struct {
	mu         sync.Mutex
	batchCalls int
	oneCalls   []string
	failFor    map[string]bool
}

func (g *fakeGen) GenerateOne(ctx context.Context, video models.Video, tone generator.ToneConfig, transcript string) (string, error) {
	g.mu.Lock()
	g.oneCalls = append(g.oneCalls, video.ID)
	g.mu.Unlock()
	if g.failFor[video.ID] {
		return "", errors.New("generation failed")
	}
	return "comment for " + video.ID, nil
}

func (g *fakeGen) GenerateAll(ctx context.Context, videos []models.Video, transcripts generator.TranscriptFetcher, sentimentOf func(videoID string) models.Sentiment) generator.BatchResult {
	g.mu.Lock()
	g.batchCalls++
	g.mu.Unlock()

	items := make([]generator.BatchItem, len(videos))
	for i, v := range videos {
		items[i] = generator.BatchItem{VideoID: v.ID}
		if transcripts != nil {
			if text, err := transcripts.Transcript(ctx, v.ID); err == nil {
				items[i].Transcript = text
			}
		}
		if g.failFor[v.ID] {
			items[i].Err = errors.New("generation failed")
		} else {
			items[i].Comment = "comment for " + v.ID
		}
	}
	return generator.BatchResult{Items: items}
}

type fakeTranscripts struct {
	byID map[string]string
}

func (f fakeTranscripts) Transcript(ctx context.Context, videoID string) (string, error) {
	text, ok := f.byID[videoID]
	if !ok {
		return "", errors.New("no captions")
	}
	return text, nil
}

func TestNextRequiresSelection(t *testing.T) {
	s := newSession("sess-1", "user-1")

	err := s.Next()
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected a validation error on an empty selection, got %v", err)
	}
	if s.Stage() != StageSelect {
		t.Fatal("expected the stage to be unchanged after rejection")
	}

	s.AddVideo(video("a"))
	if err := s.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Stage() != StageDefine {
		t.Fatalf("expected stage 2, got %d", s.Stage())
	}
}

func TestStageClamping(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))

	s.Prev()
	if s.Stage() != StageSelect {
		t.Fatal("expected prev at stage 1 to stay at stage 1")
	}

	s.Next()
	s.Next()
	s.Next()
	if s.Stage() != StageReview {
		t.Fatalf("expected next to clamp at stage 3, got %d", s.Stage())
	}
}

func TestStartModeLeavesSelectOnce(t *testing.T) {
	s := newSession("sess-1", "user-1")

	if err := s.StartQuick(); !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection on empty selection, got %v", err)
	}

	s.AddVideo(video("a"))
	if err := s.StartQuick(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Mode() != ModeQuick || s.Stage() != StageDefine {
		t.Fatalf("expected quick mode at stage 2, got mode=%d stage=%d", s.Mode(), s.Stage())
	}

	if err := s.StartCustomize(); !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection after leaving the select stage, got %v", err)
	}
}

func TestQuickPathGeneratesOnceAndAdvances(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.AddVideo(video("b"))
	s.AddVideo(video("c"))

	if err := s.StartQuick(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen := &fakeGen{}
	transcripts := fakeTranscripts{byID: map[string]string{"a": "transcript a"}}

	report, err := s.RunQuickGeneration(context.Background(), gen, transcripts, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AlreadyDone {
		t.Fatal("first run should not report already done")
	}
	if len(report.Items) != 3 || report.Summary != "3/3 generated" {
		t.Fatalf("expected 3/3 generated, got %+v", report)
	}
	if s.Stage() != StageReview {
		t.Fatalf("expected the flow to advance to review, got stage %d", s.Stage())
	}
	for _, id := range []string{"a", "b", "c"} {
		if text, ok := s.EditedComment(id); !ok || text != "comment for "+id {
			t.Fatalf("expected edited comment seeded for %q, got %q ok=%v", id, text, ok)
		}
	}
	if text, fetched := s.TranscriptState("a"); !fetched || text != "transcript a" {
		t.Fatalf("expected the batch transcript to be stored, got %q fetched=%v", text, fetched)
	}

	// A repeat trigger returns the settled report without generating again.
	again, err := s.RunQuickGeneration(context.Background(), gen, transcripts, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.AlreadyDone {
		t.Fatal("expected the repeat run to report already done")
	}
	if gen.batchCalls != 1 {
		t.Fatalf("expected exactly one batch generation, got %d", gen.batchCalls)
	}
}

func TestQuickPathPartialFailureStillAdvances(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.AddVideo(video("b"))
	s.AddVideo(video("c"))
	s.StartQuick()

	gen := &fakeGen{failFor: map[string]bool{"b": true}}
	report, err := s.RunQuickGeneration(context.Background(), gen, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary != "2/3 generated" {
		t.Fatalf("expected 2/3 generated, got %q", report.Summary)
	}

	var failed int
	for _, item := range report.Items {
		if !item.Success {
			failed++
			if item.VideoID != "b" || item.Error == "" {
				t.Fatalf("expected the failure recorded on b, got %+v", item)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly one failed item, got %d", failed)
	}

	if s.Stage() != StageReview {
		t.Fatal("expected a partial failure to still advance to review")
	}
	if _, ok := s.EditedComment("b"); ok {
		t.Fatal("expected no edited comment for the failed video")
	}
	if text, ok := s.EditedComment("a"); !ok || text == "" {
		t.Fatal("expected edited comments for the succeeded videos")
	}
}

// countingTranscripts records how often each video's transcript is fetched.
type countingTranscripts struct {
	mu    sync.Mutex
	byID  map[string]string
	calls map[string]int
}

func (f *countingTranscripts) Transcript(ctx context.Context, videoID string) (string, error) {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[videoID]++
	f.mu.Unlock()

	text, ok := f.byID[videoID]
	if !ok {
		return "", errors.New("no captions")
	}
	return text, nil
}

func TestQuickGenerationReusesStoredTranscripts(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.AddVideo(video("b"))

	gen := &fakeGen{}
	transcripts := &countingTranscripts{byID: map[string]string{"a": "transcript a", "b": "transcript b"}}

	// Customize path fetches a's transcript while generating its comment.
	s.StartCustomize()
	if err := s.Define("", "custom style", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := s.GenerateCurrent(context.Background(), gen, transcripts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcripts.calls["a"] != 1 {
		t.Fatalf("expected one fetch for a after customize generation, got %d", transcripts.calls["a"])
	}

	// Back to the select stage and out again on the quick path: the batch
	// must reuse a's stored transcript instead of fetching it again.
	s.Prev()
	if err := s.StartQuick(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.RunQuickGeneration(context.Background(), gen, transcripts, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transcripts.calls["a"] != 1 {
		t.Fatalf("transcript for a fetched %d times in one session, want 1", transcripts.calls["a"])
	}
	if transcripts.calls["b"] != 1 {
		t.Fatalf("expected exactly one fetch for b, got %d", transcripts.calls["b"])
	}
	if text, fetched := s.TranscriptState("a"); !fetched || text != "transcript a" {
		t.Fatalf("expected a's stored transcript to survive, got %q fetched=%v", text, fetched)
	}
}

func TestQuickGenerationRequiresQuickMode(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.StartCustomize()

	_, err := s.RunQuickGeneration(context.Background(), &fakeGen{}, nil, 0)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection on the customize path, got %v", err)
	}
}

func TestDefineRequiresCustomizeStage(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))

	if err := s.Define("thoughtful-question", "", "", ""); !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection before leaving select, got %v", err)
	}

	s.StartCustomize()
	if err := s.Define("no-such-template", "", "", ""); !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection of an unknown template, got %v", err)
	}
	if err := s.Define("thoughtful-question", "", "", "mention the intro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateCurrentWalksSelection(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.AddVideo(video("b"))
	s.StartCustomize()
	if err := s.Define("", "", models.SentimentEnthusiastic, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gen := &fakeGen{}

	comment, advanced, err := s.GenerateCurrent(context.Background(), gen, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advanced {
		t.Fatal("expected the flow to stay in define after the first video")
	}
	if comment != "comment for a" {
		t.Fatalf("unexpected comment %q", comment)
	}
	if current, _ := s.CurrentVideo(); current.ID != "b" {
		t.Fatalf("expected focus to advance to b, got %q", current.ID)
	}

	_, advanced, err = s.GenerateCurrent(context.Background(), gen, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !advanced || s.Stage() != StageReview {
		t.Fatalf("expected the last video to advance to review, got advanced=%v stage=%d", advanced, s.Stage())
	}
	if text, ok := s.EditedComment("b"); !ok || text != "comment for b" {
		t.Fatalf("expected edited comments seeded on review entry, got %q ok=%v", text, ok)
	}
}

func TestGenerateCurrentRequiresTone(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.StartCustomize()

	_, _, err := s.GenerateCurrent(context.Background(), &fakeGen{}, nil)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection without a defined tone, got %v", err)
	}
}

func TestGenerateCurrentFetchesTranscriptOncePerVideo(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.StartCustomize()
	s.Define("", "custom style", "", "")

	// First generation attempts the fetch; the failure is recorded so the
	// video is never fetched again this session.
	_, _, err := s.GenerateCurrent(context.Background(), &fakeGen{}, fakeTranscripts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, fetched := s.TranscriptState("a")
	if !fetched || text != "" {
		t.Fatalf("expected the failed fetch to be recorded as unavailable, got %q fetched=%v", text, fetched)
	}
}

func TestRegenerateOverwritesOnlyThatVideo(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))
	s.AddVideo(video("b"))
	s.StartQuick()

	gen := &fakeGen{}
	if _, err := s.RunQuickGeneration(context.Background(), gen, nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.SetEdited("a", "hand edited")
	s.SetEdited("b", "also edited")

	comment, err := s.Regenerate(context.Background(), gen, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := s.EditedComment("a"); text != comment {
		t.Fatalf("expected the regenerated text to replace the edit, got %q", text)
	}
	if text, _ := s.EditedComment("b"); text != "also edited" {
		t.Fatalf("expected the other video's edit untouched, got %q", text)
	}
}

func TestRegenerateRejectsUnknownVideo(t *testing.T) {
	s := newSession("sess-1", "user-1")
	s.AddVideo(video("a"))

	_, err := s.Regenerate(context.Background(), &fakeGen{}, "missing")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
}
