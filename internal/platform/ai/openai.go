package ai

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"hrconsole/internal/domain/assistant"
)

const DefaultModel = "gpt-4o-mini"

// OpenAIGenerator answers assistant prompts with the chat completions API in
// JSON mode.
type OpenAIGenerator struct {
	client openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string, opts ...option.RequestOption) *OpenAIGenerator {
	if model == "" {
		model = DefaultModel
	}
	options := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIGenerator{client: openai.NewClient(options...), model: model}
}

func (g *OpenAIGenerator) GenerateText(ctx context.Context, prompt assistant.Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if prompt.System != "" {
		messages = append(messages, openai.SystemMessage(prompt.System))
	}
	messages = append(messages, openai.UserMessage(prompt.User))

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    g.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}
