package generator

import (
	"context"
	"os"

	"google.golang.org/genai"

	"comment-pilot/config"
)

// GeminiProvider is the production TextProvider backed by the Gemini API.
type GeminiProvider struct {
	model string
}

func NewGeminiProvider() *GeminiProvider {
	model := config.GetConfig().Generator.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiProvider{model: model}
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}
