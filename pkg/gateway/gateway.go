// Package gateway is the single chokepoint for requests to the generative
// backend. It owns credential checking, prompt sanity, and error
// normalization: callers receive either content or a user-facing message,
// never an error value. Error subtypes deliberately collapse into opaque
// strings; the UI only ever shows them verbatim.
package gateway

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"athena/pkg/inference"
)

// Fixed user-facing messages. MsgNotConfigured is distinguishable from a
// transport failure so the UI can tell the author to configure a key
// instead of retrying.
const (
	MsgNotConfigured = "Erro: Chave de API não configurada."
	MsgTransport     = "Ocorreu um erro ao contatar a IA. Verifique sua conexão ou tente novamente."
)

// Request is one text-completion request.
type Request struct {
	Prompt      string
	System      string
	Temperature float64 // negative = provider default
	Fallback    string  // shown when the backend answers with empty content
	Format      *inference.ResponseFormat
}

// Gateway mediates all access to the generative backend.
type Gateway struct {
	inf        inference.Inferencer
	configured bool
}

// New wires a gateway over the given provider. configured reports whether
// a credential is present; when false every request short-circuits before
// any network attempt.
func New(inf inference.Inferencer, configured bool) *Gateway {
	return &Gateway{inf: inf, configured: configured}
}

// Configured reports whether a backend credential is available.
func (g *Gateway) Configured() bool { return g.configured }

// Complete runs a text completion. The returned flag is true only when the
// string is real content; otherwise it is one of the fixed messages or the
// request's fallback.
func (g *Gateway) Complete(ctx context.Context, req Request) (string, bool) {
	if !g.configured {
		return MsgNotConfigured, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		// Empty instruction means the caller asked for an unknown task.
		return fallback(req), false
	}
	opts := &inference.Options{Temperature: req.Temperature, System: req.System, Format: req.Format}
	out, err := g.inf.Complete(ctx, opts, req.Prompt)
	if err != nil {
		log.Error("completion failed", "error", err)
		return MsgTransport, false
	}
	if strings.TrimSpace(out) == "" {
		return fallback(req), false
	}
	return out, true
}

// GenerateImage runs an image synthesis request. Absence of a credential,
// transport failure, and an empty response all collapse into nil.
func (g *Gateway) GenerateImage(ctx context.Context, prompt string) *inference.InlineImage {
	if !g.configured || strings.TrimSpace(prompt) == "" {
		return nil
	}
	img, err := g.inf.GenerateImage(ctx, prompt)
	if err != nil {
		log.Error("image generation failed", "error", err)
		return nil
	}
	if img == nil || len(img.Data) == 0 {
		return nil
	}
	return img
}

func fallback(req Request) string {
	if req.Fallback != "" {
		return req.Fallback
	}
	return MsgTransport
}
