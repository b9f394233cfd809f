package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultGeminiModel = "gemini-2.5-flash"
	geminiImageModel   = "gemini-2.5-flash-image"
)

// GeminiInferencer implements Inferencer on the Google GenAI SDK. It is the
// only provider that also serves image generation.
type GeminiInferencer struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiInferencer creates a Gemini-backed inferencer.
func NewGeminiInferencer(apiKey, model string) (*GeminiInferencer, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		apiKey: apiKey,
		model:  cmp.Or(model, defaultGeminiModel),
	}, nil
}

func (g *GeminiInferencer) SetModel(model string) {
	g.model = cmp.Or(model, defaultGeminiModel)
}

// Complete sends the prompt to the text model and returns its output.
func (g *GeminiInferencer) Complete(ctx context.Context, opts *Options, prompt string) (string, error) {
	if opts == nil {
		opts = &Options{Temperature: -1}
	}
	config := &genai.GenerateContentConfig{}
	if opts.System != "" {
		config.SystemInstruction = genai.NewContentFromText(opts.System, genai.RoleModel)
	}
	if opts.Temperature >= 0 {
		config.Temperature = genai.Ptr(float32(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxTokens)
	}
	if opts.Format != nil {
		// No native schema enforcement here; plain JSON mode is close enough.
		config.ResponseMIMEType = "application/json"
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}

// GenerateImage asks the image model for a single illustration and returns
// the first inline payload found in the response.
func (g *GeminiInferencer) GenerateImage(ctx context.Context, prompt string) (*InlineImage, error) {
	result, err := g.client.Models.GenerateContent(ctx, geminiImageModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &InlineImage{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return nil, errors.New("no inline image in response")
}
