package models

// CommentTemplate is a canned style the user can pick in the customize path.
type CommentTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Template    string `json:"template"`
}

var commentTemplates = []CommentTemplate{
	{
		ID:          "thoughtful-question",
		Name:        "Thoughtful Question",
		Description: "Ask an insightful question that encourages discussion",
		Template:    "This is really interesting! I'm curious about [specific aspect]. Could you elaborate on how [related topic] plays into this?",
	},
	{
		ID:          "expert-insight",
		Name:        "Expert Insight",
		Description: "Share your expertise or additional perspective",
		Template:    "Great content! I've been working with [related field] for a while, and I've found that [your insight]. This aligns well with what you mentioned about [video topic].",
	},
	{
		ID:          "supportive-feedback",
		Name:        "Supportive Feedback",
		Description: "Provide encouraging and constructive feedback",
		Template:    "This was really helpful! I especially appreciated [specific part]. One thing that could make this even better is [constructive suggestion].",
	},
	{
		ID:          "critical-analysis",
		Name:        "Critical Analysis",
		Description: "Offer a balanced, analytical perspective",
		Template:    "Interesting perspective on [topic]. While I agree with [point of agreement], I think it's worth considering [alternative viewpoint] because [reasoning].",
	},
}

// Templates returns the canned template catalogue.
func Templates() []CommentTemplate {
	out := make([]CommentTemplate, len(commentTemplates))
	copy(out, commentTemplates)
	return out
}

// TemplateByID looks up a canned template.
func TemplateByID(id string) (CommentTemplate, bool) {
	for _, t := range commentTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return CommentTemplate{}, false
}
