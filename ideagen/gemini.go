package ideagen

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiSource requests ideas from Google Gemini.
type GeminiSource struct {
	apiKey       string
	defaultModel string
}

func NewGeminiSource(defaultModel string) (*GeminiSource, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return &GeminiSource{apiKey: apiKey, defaultModel: defaultModel}, nil
}

func (s *GeminiSource) RequestIdea(ctx context.Context, req IdeaRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: s.apiKey,
	})
	if err != nil {
		return "", err
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(BuildPrompt(req)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}
