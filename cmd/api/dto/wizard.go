package dto

import (
	"comment-pilot/models"
	"comment-pilot/wizard"
)

// AddVideoRequest adds a video to the selection, either by a full descriptor
// coming from search results or by a pasted watch URL.
type AddVideoRequest struct {
	Video *models.Video `json:"video,omitempty"`
	URL   string        `json:"url,omitempty"`
}

type SetSentimentRequest struct {
	Sentiment string `json:"sentiment" binding:"required"`
}

// DefineRequest carries the customize-path generation parameters.
type DefineRequest struct {
	TemplateID        string `json:"template_id"`
	CustomTemplate    string `json:"custom_template"`
	Sentiment         string `json:"sentiment"`
	AdditionalContext string `json:"additional_context"`
}

type EditCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// GeneratedCommentsDTO is the tagged variant of the generated payload.
type GeneratedCommentsDTO struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	PerVideo map[string]string `json:"per_video,omitempty"`
}

// WizardSessionDTO is the rendered session state.
type WizardSessionDTO struct {
	ID          string               `json:"id"`
	Stage       int                  `json:"stage"`
	Mode        string               `json:"mode"`
	Focus       int                  `json:"focus"`
	Videos      []models.Video       `json:"videos"`
	Sentiments  map[string]string    `json:"sentiments"`
	Transcripts map[string]string    `json:"transcripts"`
	Generated   GeneratedCommentsDTO `json:"generated"`
	Edited      map[string]string    `json:"edited"`
	Posted      []string             `json:"posted"`
	QuickDone   bool                 `json:"quick_done"`
}

func NewWizardSessionDTO(snap wizard.Snapshot) WizardSessionDTO {
	d := WizardSessionDTO{
		ID:          snap.ID,
		Stage:       int(snap.Stage),
		Mode:        modeName(snap.Mode),
		Focus:       snap.Focus,
		Videos:      snap.Videos,
		Sentiments:  make(map[string]string, len(snap.Sentiments)),
		Transcripts: snap.Transcripts,
		Edited:      snap.Edited,
		Posted:      snap.Posted,
		QuickDone:   snap.QuickDone,
	}
	for videoID, tag := range snap.Sentiments {
		d.Sentiments[videoID] = string(tag)
	}
	d.Generated = GeneratedCommentsDTO{
		Kind:     generatedKindName(snap.Generated.Kind),
		Text:     snap.Generated.Text,
		PerVideo: snap.Generated.PerVideo,
	}
	return d
}

func modeName(m wizard.Mode) string {
	switch m {
	case wizard.ModeQuick:
		return "quick"
	case wizard.ModeCustomize:
		return "customize"
	default:
		return "unset"
	}
}

func generatedKindName(k wizard.GeneratedKind) string {
	switch k {
	case wizard.GeneratedSingle:
		return "single"
	case wizard.GeneratedPerVideo:
		return "per_video"
	default:
		return "none"
	}
}
