package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// ResponseFormat constrains a completion to a JSON schema on providers with
// structured-output support.
type ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion

// Options tunes a single completion request.
type Options struct {
	// Temperature in 0.0–1.0; negative means the provider default.
	Temperature float64
	// System is an optional system-level persona instruction.
	System string
	// MaxTokens caps the completion length; 0 means the provider default.
	MaxTokens int64
	// Format, when set, requests schema-constrained JSON output. Providers
	// without native schema support fall back to plain JSON mode.
	Format *ResponseFormat
}

// InlineImage is a decoded inline image payload returned by an
// image-generation request.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// Inferencer is the transport boundary to a generative backend. Both
// operations may fail with transport or backend errors; translating those
// into user-facing results is the gateway's job, not the provider's.
type Inferencer interface {
	Complete(ctx context.Context, opts *Options, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (*InlineImage, error)
}
