package wizard

import (
	"sync"

	"comment-pilot/models"
)

// Stage is the wizard's position in the 3-stage flow.
type Stage int

const (
	StageSelect Stage = iota + 1
	StageDefine
	StageReview
)

// Mode is decided at stage-1 exit. There is no sentinel template value; the
// quick path is an explicit enum member.
type Mode int

const (
	ModeUnset Mode = iota
	ModeQuick
	ModeCustomize
)

// GeneratedKind tags the shape of the generated-comment payload. The legacy
// single-video flow produced one string; the multi-video flow produces a map
// keyed by videoId. Consumers branch on the tag instead of type-checking at
// runtime.
type GeneratedKind int

const (
	GeneratedNone GeneratedKind = iota
	GeneratedSingle
	GeneratedPerVideo
)

// GeneratedComments is the tagged variant holding either form.
type GeneratedComments struct {
	Kind     GeneratedKind
	Text     string
	PerVideo map[string]string
}

type quickState int

const (
	quickIdle quickState = iota
	quickRunning
	quickDone
)

// transcriptEntry records that a fetch was attempted, so each video's
// transcript is fetched at most once per session. Text empty with fetched
// true is the explicit "unavailable" marker.
type transcriptEntry struct {
	text    string
	fetched bool
}

// Session is the aggregate root of one interactive flow. It lives only in
// memory, owned by a Store, and is destroyed or reset explicitly. Handlers
// may race on the same session, so every operation holds the mutex;
// semantically it is single-writer (one user, one active flow).
type Session struct {
	mu sync.Mutex

	id        string
	userID    string
	connected bool

	stage Stage
	mode  Mode

	selected    []models.Video
	sentiments  map[string]models.Sentiment
	transcripts map[string]transcriptEntry
	generated   GeneratedComments
	edited      map[string]string
	posted      map[string]bool

	// Customize-path parameters, global rather than per-video.
	templateID        string
	customTemplate    string
	selectedSentiment models.Sentiment
	additionalContext string

	// focus is the index of the video currently being customized/reviewed.
	focus int

	quick       quickState
	quickResult quickResultCache
}

type quickResultCache struct {
	valid   bool
	items   []BatchOutcome
	summary string
}

// BatchOutcome is the per-video report of a settled quick generation.
type BatchOutcome struct {
	VideoID string `json:"video_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func newSession(id, userID string) *Session {
	return &Session{
		id:          id,
		userID:      userID,
		connected:   true,
		stage:       StageSelect,
		sentiments:  map[string]models.Sentiment{},
		transcripts: map[string]transcriptEntry{},
		edited:      map[string]string{},
		posted:      map[string]bool{},
	}
}

func (s *Session) ID() string     { return s.id }
func (s *Session) UserID() string { return s.userID }

// AddVideo inserts a video with set semantics on id, preserving insertion
// order, and applies the default sentiment. Returns false when the video was
// already selected; callers surface that as a distinct signal, not an error.
func (s *Session) AddVideo(v models.Video) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.selected {
		if existing.ID == v.ID {
			return false
		}
	}
	s.selected = append(s.selected, v)
	s.sentiments[v.ID] = models.DefaultSentiment
	return true
}

// RemoveVideo removes a video and cascades: its sentiment, transcript and
// generated/edited comment entries go with it. Removing an absent video is a
// no-op.
func (s *Session) RemoveVideo(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.selected {
		if v.ID == videoID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			if s.focus >= len(s.selected) && s.focus > 0 {
				s.focus = len(s.selected) - 1
			}
			break
		}
	}
	delete(s.sentiments, videoID)
	delete(s.transcripts, videoID)
	delete(s.edited, videoID)
	delete(s.posted, videoID)
	if s.generated.Kind == GeneratedPerVideo {
		delete(s.generated.PerVideo, videoID)
	}
}

// SetSentiment tags one selected video.
func (s *Session) SetSentiment(videoID string, sentiment models.Sentiment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasVideoLocked(videoID) {
		return false
	}
	s.sentiments[videoID] = sentiment
	return true
}

// SetTranscript records a fetched transcript. An empty text is the explicit
// "unavailable" marker; either way the video counts as fetched and will not
// be fetched again this session.
func (s *Session) SetTranscript(videoID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[videoID] = transcriptEntry{text: text, fetched: true}
}

// TranscriptState returns the stored transcript and whether a fetch was
// already attempted.
func (s *Session) TranscriptState(videoID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.transcripts[videoID]
	return entry.text, entry.fetched
}

// SetGenerated stores one video's generated comment, switching the payload to
// the per-video form. Other videos' entries are untouched.
func (s *Session) SetGenerated(videoID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setGeneratedLocked(videoID, text)
}

func (s *Session) setGeneratedLocked(videoID, text string) {
	if s.generated.Kind != GeneratedPerVideo {
		s.generated = GeneratedComments{Kind: GeneratedPerVideo, PerVideo: map[string]string{}}
	}
	s.generated.PerVideo[videoID] = text
}

// SetGeneratedSingle stores the legacy single-string form.
func (s *Session) SetGeneratedSingle(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generated = GeneratedComments{Kind: GeneratedSingle, Text: text}
}

// MergeGenerated bulk-merges a batch's successful comments into the
// per-video payload.
func (s *Session) MergeGenerated(comments map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for videoID, text := range comments {
		s.setGeneratedLocked(videoID, text)
	}
}

// SetEdited stores the user-edited text for a selected video. Edited text is
// the authoritative text to post.
func (s *Session) SetEdited(videoID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasVideoLocked(videoID) {
		return false
	}
	s.edited[videoID] = text
	return true
}

// EditedComment returns the authoritative text for a video.
func (s *Session) EditedComment(videoID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.edited[videoID]
	return text, ok
}

// SeedEditedFromGenerated copies generated comments into the edited map
// without clobbering existing edits. The legacy single form seeds only a
// single-video selection.
func (s *Session) SeedEditedFromGenerated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.generated.Kind {
	case GeneratedPerVideo:
		for videoID, text := range s.generated.PerVideo {
			if _, exists := s.edited[videoID]; !exists {
				s.edited[videoID] = text
			}
		}
	case GeneratedSingle:
		if len(s.selected) == 1 {
			videoID := s.selected[0].ID
			if _, exists := s.edited[videoID]; !exists {
				s.edited[videoID] = s.generated.Text
			}
		}
	}
}

// MarkPosted records a successful post. The set only grows; it is cleared by
// Reset alone.
func (s *Session) MarkPosted(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posted[videoID] = true
}

// IsPosted reports whether a video was already posted in this session.
func (s *Session) IsPosted(videoID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posted[videoID]
}

// Videos returns the selection in insertion order.
func (s *Session) Videos() []models.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Video, len(s.selected))
	copy(out, s.selected)
	return out
}

// Video returns one selected descriptor by id.
func (s *Session) Video(videoID string) (models.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.selected {
		if v.ID == videoID {
			return v, true
		}
	}
	return models.Video{}, false
}

// SentimentOf returns the sentiment tag for a video, defaulting to positive.
func (s *Session) SentimentOf(videoID string) models.Sentiment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag, ok := s.sentiments[videoID]; ok {
		return tag
	}
	return models.DefaultSentiment
}

// RecordSentiment returns the sentiment to persist with a posted comment:
// the customize path's global selection when present, otherwise the video's
// own tag.
func (s *Session) RecordSentiment(videoID string) models.Sentiment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeCustomize && s.selectedSentiment != "" {
		return s.selectedSentiment
	}
	return s.sentimentLocked(videoID)
}

func (s *Session) Stage() Stage { s.mu.Lock(); defer s.mu.Unlock(); return s.stage }
func (s *Session) Mode() Mode   { s.mu.Lock(); defer s.mu.Unlock(); return s.mode }

// Generated returns a copy of the generated-comment payload.
func (s *Session) Generated() GeneratedComments {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := GeneratedComments{Kind: s.generated.Kind, Text: s.generated.Text}
	if s.generated.PerVideo != nil {
		out.PerVideo = make(map[string]string, len(s.generated.PerVideo))
		for k, v := range s.generated.PerVideo {
			out.PerVideo[k] = v
		}
	}
	return out
}

// Snapshot is a copied, lock-free view of the session for rendering.
type Snapshot struct {
	ID          string
	UserID      string
	Stage       Stage
	Mode        Mode
	Focus       int
	Videos      []models.Video
	Sentiments  map[string]models.Sentiment
	Transcripts map[string]string
	Generated   GeneratedComments
	Edited      map[string]string
	Posted      []string
	QuickDone   bool
}

// Snapshot copies the current state. Posted ids follow selection order;
// transcripts include only videos whose fetch was attempted, with the empty
// string as the unavailable marker.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:          s.id,
		UserID:      s.userID,
		Stage:       s.stage,
		Mode:        s.mode,
		Focus:       s.focus,
		Videos:      make([]models.Video, len(s.selected)),
		Sentiments:  make(map[string]models.Sentiment, len(s.sentiments)),
		Transcripts: make(map[string]string),
		Edited:      make(map[string]string, len(s.edited)),
		QuickDone:   s.quick == quickDone,
	}
	copy(snap.Videos, s.selected)
	for k, v := range s.sentiments {
		snap.Sentiments[k] = v
	}
	for k, entry := range s.transcripts {
		if entry.fetched {
			snap.Transcripts[k] = entry.text
		}
	}
	for k, v := range s.edited {
		snap.Edited[k] = v
	}
	snap.Generated = GeneratedComments{Kind: s.generated.Kind, Text: s.generated.Text}
	if s.generated.PerVideo != nil {
		snap.Generated.PerVideo = make(map[string]string, len(s.generated.PerVideo))
		for k, v := range s.generated.PerVideo {
			snap.Generated.PerVideo[k] = v
		}
	}
	for _, v := range s.selected {
		if s.posted[v.ID] {
			snap.Posted = append(snap.Posted, v.ID)
		}
	}
	return snap
}

func (s *Session) hasVideoLocked(videoID string) bool {
	for _, v := range s.selected {
		if v.ID == videoID {
			return true
		}
	}
	return false
}

// resetLocked restores the initial state, keeping identity and the
// connection flag.
func (s *Session) resetLocked() {
	s.stage = StageSelect
	s.mode = ModeUnset
	s.selected = nil
	s.sentiments = map[string]models.Sentiment{}
	s.transcripts = map[string]transcriptEntry{}
	s.generated = GeneratedComments{}
	s.edited = map[string]string{}
	s.posted = map[string]bool{}
	s.templateID = ""
	s.customTemplate = ""
	s.selectedSentiment = ""
	s.additionalContext = ""
	s.focus = 0
	s.quick = quickIdle
	s.quickResult = quickResultCache{}
}
