package models

import "comment-pilot/apperrors"

// Sentiment is one of the fixed tone tags controlling generation style.
type Sentiment string

const (
	SentimentPositive     Sentiment = "positive"
	SentimentNeutral      Sentiment = "neutral"
	SentimentConstructive Sentiment = "constructive"
	SentimentEnthusiastic Sentiment = "enthusiastic"

	// DefaultSentiment is applied when a video is added to a selection.
	DefaultSentiment = SentimentPositive
)

// sentimentInstructions maps each tag to the tone instruction included in the
// generation prompt.
var sentimentInstructions = map[Sentiment]string{
	SentimentPositive:     "Use an encouraging and appreciative tone. Be supportive and highlight the positive aspects.",
	SentimentNeutral:      "Use a balanced and informative tone. Be objective and professional.",
	SentimentConstructive: "Provide helpful feedback with actionable suggestions. Be respectful and constructive.",
	SentimentEnthusiastic: "Show excitement and genuine engagement. Be energetic and passionate about the topic.",
}

// ParseSentiment validates a raw tag.
func ParseSentiment(raw string) (Sentiment, error) {
	s := Sentiment(raw)
	if _, ok := sentimentInstructions[s]; !ok {
		return "", apperrors.NewValidation("unknown sentiment %q", raw)
	}
	return s, nil
}

// Instruction returns the prompt instruction for the tag, or the empty string
// for an unknown tag.
func (s Sentiment) Instruction() string {
	return sentimentInstructions[s]
}

// AllSentiments lists the vocabulary in display order.
func AllSentiments() []Sentiment {
	return []Sentiment{
		SentimentPositive,
		SentimentNeutral,
		SentimentConstructive,
		SentimentEnthusiastic,
	}
}
