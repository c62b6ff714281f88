package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"comment-pilot/models"
)

func TestBuildPromptIncludesToneSections(t *testing.T) {
	g := testGenerator(fakeProvider{})
	video := models.Video{ID: "a", Title: "Learning Go", ChannelTitle: "GopherTube", Description: "An intro."}

	tone := ToneConfig{
		Template:          "Ask a thoughtful question",
		AdditionalContext: "mention the first example",
	}
	prompt := g.buildPrompt(video, tone, "welcome to the video")

	assert.Contains(t, prompt, "- Title: Learning Go")
	assert.Contains(t, prompt, "- Channel: GopherTube")
	assert.Contains(t, prompt, "Video Transcript (excerpt):\nwelcome to the video")
	assert.Contains(t, prompt, "Template/Style to Follow:\nAsk a thoughtful question")
	assert.Contains(t, prompt, "Additional Context from User:\nmention the first example")
	assert.True(t, strings.HasSuffix(prompt, "Generate the comment:"))
}

func TestBuildPromptSentimentInstruction(t *testing.T) {
	g := testGenerator(fakeProvider{})
	video := models.Video{ID: "a", Title: "Learning Go"}

	prompt := g.buildPrompt(video, ToneConfig{Sentiment: models.SentimentConstructive}, "")

	assert.Contains(t, prompt, "Tone: "+models.SentimentConstructive.Instruction())
	assert.NotContains(t, prompt, "Video Transcript")
	assert.Contains(t, prompt, "3. Be specific to this video's content\n")
}

func TestBuildPromptTruncatesByRunes(t *testing.T) {
	g := &Generator{provider: fakeProvider{}, descLimit: 5, transcriptLimit: 4}
	video := models.Video{ID: "a", Title: "Learning Go", Description: "반갑습니다 여러분"}

	prompt := g.buildPrompt(video, ToneConfig{}, "가나다라마바사")

	assert.Contains(t, prompt, "- Description: 반갑습니다")
	assert.NotContains(t, prompt, "여러분")
	assert.Contains(t, prompt, "가나다라")
	assert.NotContains(t, prompt, "가나다라마")
}

func TestGenerateOneRequiresTitle(t *testing.T) {
	g := testGenerator(fakeProvider{})

	_, err := g.GenerateOne(context.Background(), models.Video{ID: "a"}, ToneConfig{}, "")
	assert.Error(t, err)
}

func TestGenerateOneRejectsEmptyCompletion(t *testing.T) {
	g := testGenerator(fakeProvider{failWhen: nil})
	g.provider = blankProvider{}

	_, err := g.GenerateOne(context.Background(), models.Video{ID: "a", Title: "Learning Go"}, ToneConfig{}, "")
	assert.Error(t, err)
}

type blankProvider struct{}

func (blankProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return "   \n", nil
}
