package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena/pkg/inference"
)

type fakeInferencer struct {
	calls      int
	imageCalls int
	text       string
	img        *inference.InlineImage
	err        error
}

func (f *fakeInferencer) Complete(_ context.Context, _ *inference.Options, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeInferencer) GenerateImage(_ context.Context, _ string) (*inference.InlineImage, error) {
	f.imageCalls++
	return f.img, f.err
}

func TestNotConfiguredShortCircuits(t *testing.T) {
	fake := &fakeInferencer{text: "should never be seen"}
	g := New(fake, false)

	out, ok := g.Complete(context.Background(), Request{Prompt: "qualquer coisa", Temperature: -1})
	assert.False(t, ok)
	assert.Equal(t, MsgNotConfigured, out)

	img := g.GenerateImage(context.Background(), "uma capa")
	assert.Nil(t, img)

	assert.Zero(t, fake.calls, "no network call may happen without a credential")
	assert.Zero(t, fake.imageCalls)
}

func TestTransportErrorBecomesFixedMessage(t *testing.T) {
	fake := &fakeInferencer{err: errors.New("connection reset")}
	g := New(fake, true)

	out, ok := g.Complete(context.Background(), Request{Prompt: "analise isto", Temperature: -1})
	assert.False(t, ok)
	assert.Equal(t, MsgTransport, out)
	assert.Equal(t, 1, fake.calls)
}

func TestEmptyResponseUsesFallback(t *testing.T) {
	fake := &fakeInferencer{text: "  \n"}
	g := New(fake, true)

	out, ok := g.Complete(context.Background(), Request{
		Prompt:      "continue",
		Fallback:    "Não foi possível gerar uma continuação.",
		Temperature: -1,
	})
	assert.False(t, ok)
	assert.Equal(t, "Não foi possível gerar uma continuação.", out)
}

func TestEmptyPromptIsCallerErrorWithoutNetwork(t *testing.T) {
	fake := &fakeInferencer{text: "conteúdo"}
	g := New(fake, true)

	out, ok := g.Complete(context.Background(), Request{Prompt: "   ", Fallback: "fallback", Temperature: -1})
	assert.False(t, ok)
	assert.Equal(t, "fallback", out)
	assert.Zero(t, fake.calls)
}

func TestContentPassesThrough(t *testing.T) {
	fake := &fakeInferencer{text: "Uma análise detalhada."}
	g := New(fake, true)

	out, ok := g.Complete(context.Background(), Request{Prompt: "analise", Temperature: 0.7})
	require.True(t, ok)
	assert.Equal(t, "Uma análise detalhada.", out)
}

func TestImageFailuresCollapseToNil(t *testing.T) {
	g := New(&fakeInferencer{err: errors.New("boom")}, true)
	assert.Nil(t, g.GenerateImage(context.Background(), "capa"))

	g = New(&fakeInferencer{img: &inference.InlineImage{}}, true)
	assert.Nil(t, g.GenerateImage(context.Background(), "capa"), "empty payload is an absence signal")

	fake := &fakeInferencer{img: &inference.InlineImage{MIMEType: "image/png", Data: []byte{1, 2, 3}}}
	g = New(fake, true)
	img := g.GenerateImage(context.Background(), "capa")
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MIMEType)
}
