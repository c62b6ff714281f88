package generator

import (
	"errors"
	"fmt"
	"strings"

	"comment-pilot/models"
)

var errEmptyCompletion = errors.New("provider returned empty text")

// buildPrompt assembles the generation request. The description and
// transcript bounds are a hard contract keeping the request within provider
// limits.
func (g *Generator) buildPrompt(video models.Video, tone ToneConfig, transcript string) string {
	var b strings.Builder

	b.WriteString("You are helping a user create a thoughtful, authentic YouTube comment.\n\n")
	b.WriteString("Video Information:\n")
	fmt.Fprintf(&b, "- Title: %s\n", video.Title)
	fmt.Fprintf(&b, "- Channel: %s\n", video.ChannelTitle)
	fmt.Fprintf(&b, "- Description: %s", truncateRunes(video.Description, g.descLimit))

	if transcript != "" {
		fmt.Fprintf(&b, "\n\nVideo Transcript (excerpt):\n%s", truncateRunes(transcript, g.transcriptLimit))
	}
	b.WriteString("\n\n")

	if tone.Template != "" {
		fmt.Fprintf(&b, "Template/Style to Follow:\n%s\n\n", tone.Template)
	}
	if instruction := tone.Sentiment.Instruction(); instruction != "" {
		fmt.Fprintf(&b, "Tone: %s\n\n", instruction)
	}
	if tone.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional Context from User:\n%s\n\n", tone.AdditionalContext)
	}

	b.WriteString("Instructions:\n")
	b.WriteString("1. Create a genuine, personalized comment that feels natural and human\n")
	b.WriteString("2. Keep it SHORT: 1-2 sentences (20-40 words max)\n")
	if transcript != "" {
		b.WriteString("3. Be specific to this video's content (reference the transcript when relevant)\n")
	} else {
		b.WriteString("3. Be specific to this video's content\n")
	}
	b.WriteString("4. Avoid generic praise - reference actual content when possible\n")
	b.WriteString("5. Make it conversational and authentic\n")
	b.WriteString("6. Do NOT use emojis unless specifically requested\n")
	b.WriteString("7. Do NOT sound overly formal or robotic\n")
	b.WriteString("8. Be concise and to the point - shorter is better\n\n")
	b.WriteString("Generate the comment:")

	return b.String()
}

// truncateRunes returns s truncated to max runes.
func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
