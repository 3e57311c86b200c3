package ideagen

import (
	"context"
	"errors"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAISource requests ideas through the official openai-go SDK
// (chat completions).
type OpenAISource struct {
	defaultModel string
	opts         []option.RequestOption
}

func NewOpenAISource(defaultModel string) (*OpenAISource, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAISource{defaultModel: defaultModel, opts: opts}, nil
}

func (s *OpenAISource) RequestIdea(ctx context.Context, req IdeaRequest) (string, error) {
	client := openai.NewClient(s.opts...)

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SYSTEM_INSTRUCTION),
			openai.UserMessage(BuildPrompt(req)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
