package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// OpenAIInferencer implements text completion using OpenAI's official Go
// SDK. It also fronts any OpenAI-compatible local server via ChangeBaseURL.
// Image generation is not offered on this provider.
type OpenAIInferencer struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIInferencer creates a new inferencer instance using the OpenAI client.
func NewOpenAIInferencer(apiKey, model string) *OpenAIInferencer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIInferencer{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAIInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIInferencer) SetModel(model string) {
	o.model = model
}

// Complete sends the prompt to the chat completion endpoint and returns the output.
func (o *OpenAIInferencer) Complete(ctx context.Context, opts *Options, prompt string) (string, error) {
	if opts == nil {
		opts = &Options{Temperature: -1}
	}
	params := openai.ChatCompletionNewParams{Model: o.model}
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if opts.System != "" {
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role: "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.Opt[string]{Value: opts.System},
				},
			},
		})
	}
	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Role: "user",
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: param.Opt[string]{Value: prompt},
			},
		},
	})
	params.Messages = messages

	if opts.Format != nil {
		params.ResponseFormat = *opts.Format
	}
	params.MaxCompletionTokens = openai.Int(cmp.Or(opts.MaxTokens, 4096*4))
	if opts.Temperature >= 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	params.TopP = openai.Float(1.0)

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai inference error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	if resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion content")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage is not available on the OpenAI-compatible path; cover art
// requires the Gemini provider.
func (o *OpenAIInferencer) GenerateImage(context.Context, string) (*InlineImage, error) {
	return nil, errors.New("image generation not supported by this provider")
}
