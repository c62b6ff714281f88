package wizard

import (
	"context"
	"time"

	"comment-pilot/apperrors"
	"comment-pilot/generator"
	"comment-pilot/models"
)

// Generator is the slice of the comment generator the orchestrator drives.
type Generator interface {
	GenerateOne(ctx context.Context, video models.Video, tone generator.ToneConfig, transcript string) (string, error)
	GenerateAll(ctx context.Context, videos []models.Video, transcripts generator.TranscriptFetcher, sentimentOf func(videoID string) models.Sentiment) generator.BatchResult
}

// Next advances one stage, clamped at review. Leaving the select stage
// requires a non-empty selection; on rejection the stage is unchanged.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage == StageSelect && len(s.selected) == 0 {
		return apperrors.NewValidation("select at least one video before continuing")
	}
	if s.stage < StageReview {
		s.stage++
	}
	return nil
}

// Prev moves one stage back, clamped at select.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage > StageSelect {
		s.stage--
	}
}

// Reset returns to the select stage and clears all session data except the
// connection flag.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// StartQuick exits the select stage on the quick path: per-video sentiments
// with defaults, no per-video customization.
func (s *Session) StartQuick() error {
	return s.startMode(ModeQuick)
}

// StartCustomize exits the select stage on the customize path.
func (s *Session) StartCustomize() error {
	return s.startMode(ModeCustomize)
}

func (s *Session) startMode(mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageSelect {
		return apperrors.NewValidation("the flow has already left the selection stage")
	}
	if len(s.selected) == 0 {
		return apperrors.NewValidation("select at least one video before continuing")
	}
	s.mode = mode
	s.stage = StageDefine
	s.focus = 0
	return nil
}

// Define sets the customize-path generation parameters. templateID refers to
// a canned template; customTemplate is free text; the two template forms and
// the sentiment are alternatives.
func (s *Session) Define(templateID, customTemplate string, sentiment models.Sentiment, additionalContext string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageDefine || s.mode != ModeCustomize {
		return apperrors.NewValidation("comment definition is only available in the customize stage")
	}
	if templateID != "" {
		if _, ok := models.TemplateByID(templateID); !ok {
			return apperrors.NewValidation("unknown template %q", templateID)
		}
	}
	s.templateID = templateID
	s.customTemplate = customTemplate
	s.selectedSentiment = sentiment
	s.additionalContext = additionalContext
	return nil
}

// QuickReport is the settled outcome of a quick-path batch generation.
type QuickReport struct {
	Items       []BatchOutcome `json:"items"`
	Summary     string         `json:"summary"`
	AlreadyDone bool           `json:"already_done"`
}

// RunQuickGeneration triggers the fan-out generation for every selected
// video. It runs at most once per session: a repeat call returns the cached
// report, and a call while a run is in flight is rejected. After all tasks
// settle the results are merged, edited comments are seeded, and following
// the settle delay the flow advances to review regardless of partial
// failure.
func (s *Session) RunQuickGeneration(ctx context.Context, gen Generator, transcripts generator.TranscriptFetcher, settle time.Duration) (QuickReport, error) {
	s.mu.Lock()
	if s.mode != ModeQuick || s.stage < StageDefine {
		s.mu.Unlock()
		return QuickReport{}, apperrors.NewValidation("quick generation requires the quick path past the selection stage")
	}
	switch s.quick {
	case quickRunning:
		s.mu.Unlock()
		return QuickReport{}, apperrors.NewValidation("quick generation is already running")
	case quickDone:
		report := QuickReport{Items: s.quickResult.items, Summary: s.quickResult.summary, AlreadyDone: true}
		s.mu.Unlock()
		return report, nil
	}
	s.quick = quickRunning
	videos := make([]models.Video, len(s.selected))
	copy(videos, s.selected)
	s.mu.Unlock()

	// Fan-out: one task per video, join-all. Failures settle into the
	// per-video report and never abort siblings. Transcripts the session
	// already fetched are reused, not fetched again.
	result := gen.GenerateAll(ctx, videos, sessionTranscripts{s: s, inner: transcripts}, s.SentimentOf)

	outcomes := make([]BatchOutcome, len(result.Items))
	for i, item := range result.Items {
		outcomes[i] = BatchOutcome{VideoID: item.VideoID, Success: item.Err == nil}
		if item.Err != nil {
			outcomes[i].Error = item.Err.Error()
		}
	}

	s.mu.Lock()
	for videoID, text := range result.Transcripts() {
		s.transcripts[videoID] = transcriptEntry{text: text, fetched: true}
	}
	for videoID, text := range result.Comments() {
		s.setGeneratedLocked(videoID, text)
	}
	s.quick = quickDone
	s.quickResult = quickResultCache{valid: true, items: outcomes, summary: result.Summary()}
	s.mu.Unlock()

	s.SeedEditedFromGenerated()

	// The flow pauses briefly so the settled batch is visible before the
	// review stage takes over.
	if settle > 0 {
		time.Sleep(settle)
	}

	s.mu.Lock()
	if s.stage == StageDefine {
		s.stage = StageReview
	}
	s.mu.Unlock()

	return QuickReport{Items: outcomes, Summary: result.Summary()}, nil
}

// sessionTranscripts guards a transcript fetcher with the session's
// at-most-once-per-video record: a video whose fetch was already attempted
// returns the stored text, including the empty unavailable marker.
type sessionTranscripts struct {
	s     *Session
	inner generator.TranscriptFetcher
}

func (t sessionTranscripts) Transcript(ctx context.Context, videoID string) (string, error) {
	if text, fetched := t.s.TranscriptState(videoID); fetched {
		return text, nil
	}
	if t.inner == nil {
		return "", nil
	}
	return t.inner.Transcript(ctx, videoID)
}

// CurrentVideo returns the video in focus for the customize/review flow.
func (s *Session) CurrentVideo() (models.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focus < 0 || s.focus >= len(s.selected) {
		return models.Video{}, false
	}
	return s.selected[s.focus], true
}

// GenerateCurrent runs the customize-path generation for the video in focus,
// then advances the focus, moving to the review stage once the last video's
// comment is generated. Returns the generated text and whether the flow
// advanced to review.
func (s *Session) GenerateCurrent(ctx context.Context, gen Generator, transcripts generator.TranscriptFetcher) (string, bool, error) {
	s.mu.Lock()
	if s.stage != StageDefine || s.mode != ModeCustomize {
		s.mu.Unlock()
		return "", false, apperrors.NewValidation("generation requires the customize path in the define stage")
	}
	tone, err := s.toneLocked()
	if err != nil {
		s.mu.Unlock()
		return "", false, err
	}
	if s.focus >= len(s.selected) {
		s.mu.Unlock()
		return "", false, apperrors.NewValidation("no video in focus")
	}
	video := s.selected[s.focus]
	transcript, fetched := s.transcripts[video.ID].text, s.transcripts[video.ID].fetched
	s.mu.Unlock()

	// Transcript fetch is best-effort and at most once per video per
	// session; a failure downgrades to metadata-only generation.
	if !fetched && transcripts != nil {
		if text, err := transcripts.Transcript(ctx, video.ID); err == nil {
			transcript = text
		}
		s.SetTranscript(video.ID, transcript)
	}

	comment, err := gen.GenerateOne(ctx, video, tone, transcript)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	s.setGeneratedLocked(video.ID, comment)
	advanced := false
	if s.focus < len(s.selected)-1 {
		s.focus++
	} else if s.stage == StageDefine {
		s.stage = StageReview
		s.focus = 0
		advanced = true
	}
	s.mu.Unlock()

	if advanced {
		s.SeedEditedFromGenerated()
	}
	return comment, advanced, nil
}

// Regenerate re-runs generation for one video using the stored tone and
// transcript, overwriting only that video's generated and edited entries.
func (s *Session) Regenerate(ctx context.Context, gen Generator, videoID string) (string, error) {
	s.mu.Lock()
	video, ok := models.Video{}, false
	for _, v := range s.selected {
		if v.ID == videoID {
			video, ok = v, true
			break
		}
	}
	if !ok {
		s.mu.Unlock()
		return "", apperrors.NewValidation("video %q is not part of the selection", videoID)
	}

	var tone generator.ToneConfig
	if s.mode == ModeQuick {
		tone = generator.ToneConfig{Sentiment: s.sentimentLocked(videoID)}
	} else {
		var err error
		tone, err = s.toneLocked()
		if err != nil {
			// Fall back to the video's sentiment tag when no tone was defined.
			tone = generator.ToneConfig{Sentiment: s.sentimentLocked(videoID)}
		}
	}
	transcript := s.transcripts[videoID].text
	s.mu.Unlock()

	comment, err := gen.GenerateOne(ctx, video, tone, transcript)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.setGeneratedLocked(videoID, comment)
	s.edited[videoID] = comment
	s.mu.Unlock()
	return comment, nil
}

// toneLocked resolves the customize-path tone. A template (canned or custom)
// and a sentiment are mutually exclusive; template wins when both are set.
func (s *Session) toneLocked() (generator.ToneConfig, error) {
	tone := generator.ToneConfig{AdditionalContext: s.additionalContext}

	switch {
	case s.templateID != "":
		template, ok := models.TemplateByID(s.templateID)
		if !ok {
			return tone, apperrors.NewValidation("unknown template %q", s.templateID)
		}
		tone.Template = template.Template
	case s.customTemplate != "":
		tone.Template = s.customTemplate
	case s.selectedSentiment != "":
		tone.Sentiment = s.selectedSentiment
	default:
		return tone, apperrors.NewValidation("select a template or a sentiment before generating")
	}
	return tone, nil
}

func (s *Session) sentimentLocked(videoID string) models.Sentiment {
	if tag, ok := s.sentiments[videoID]; ok {
		return tag
	}
	return models.DefaultSentiment
}
