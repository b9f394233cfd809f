package server

import (
	"context"
	"sync/atomic"
	"testing"

	"athena/pkg/gateway"
	"athena/pkg/inference"
	"athena/pkg/organizer"
	"athena/pkg/store"
)

// fakeInferencer scripts backend answers and counts calls.
type fakeInferencer struct {
	reply     string
	err       error
	completes atomic.Int32
	images    atomic.Int32
	image     *inference.InlineImage
}

func (f *fakeInferencer) Complete(context.Context, *inference.Options, string) (string, error) {
	f.completes.Add(1)
	return f.reply, f.err
}

func (f *fakeInferencer) GenerateImage(context.Context, string) (*inference.InlineImage, error) {
	f.images.Add(1)
	if f.image == nil {
		return nil, f.err
	}
	return f.image, nil
}

func newTestServer(t *testing.T, inf inference.Inferencer, configured bool) *Server {
	t.Helper()
	if inf == nil {
		inf = &fakeInferencer{reply: "resposta"}
	}
	st := store.NewMemStore()
	return NewServer(gateway.New(inf, configured), organizer.New(st), st, t.TempDir())
}
