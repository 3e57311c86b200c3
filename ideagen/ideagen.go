// Package ideagen defines the idea-source capability and its LLM-backed
// implementations. The planner only depends on the Source interface, so
// providers can be swapped or stubbed in tests.
package ideagen

import (
	"context"
	"fmt"
)

// IdeaRequest describes one content slot to generate an idea for.
type IdeaRequest struct {
	Topic    string
	Audience string
	Tone     string
	Platform string
	Model    string
}

// Source produces raw model text for one idea request. An empty string or an
// error both mean "no idea available"; callers degrade to defaults.
type Source interface {
	RequestIdea(ctx context.Context, req IdeaRequest) (string, error)
}

const SYSTEM_INSTRUCTION = `
You are an AI content strategist.

Return the output ONLY as a valid JSON object with this exact structure:
{
  "title": "Short, catchy title (max 80 chars)",
  "description": "1-2 sentences. Max 280 chars.",
  "format": "one of: text | image | reel | carousel | video | thread",
  "hashtags": ["#tag1", "#tag2", "#tag3"]
}

Rules:
- Output MUST be valid JSON. No backticks, no markdown, no extra text.
- Keep language consistent with the user's inputs.
- Respect length limits.
- Do not include any keys other than: title, description, format, hashtags.
`

// BuildPrompt renders the user-facing part of the prompt for one slot.
func BuildPrompt(req IdeaRequest) string {
	return fmt.Sprintf(
		"Inputs:\n- Topic: %q\n- Audience: %q\n- Tone: %q\n- Platform: %q",
		req.Topic, req.Audience, req.Tone, req.Platform,
	)
}

// New constructs the configured provider.
func New(provider, defaultModel string) (Source, error) {
	switch provider {
	case "google":
		return NewGeminiSource(defaultModel)
	case "openai":
		return NewOpenAISource(defaultModel)
	}
	return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
}
