package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"athena/pkg/gateway"
	"athena/pkg/inference"
	"athena/pkg/organizer"
	"athena/pkg/server"
	"athena/pkg/store"
)

const autosaveInterval = 30 * time.Second

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	inf, configured := buildInferencer()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	st, err := store.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("failed opening data dir %s: %v", dataDir, err)
	}

	srv := server.NewServer(
		gateway.New(inf, configured),
		organizer.New(st),
		st,
		filepath.Join(dataDir, "covers"),
	)
	srv.Echo.Logger.SetLevel(log.INFO)

	go autosaveLoop(ctx, srv)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}

// buildInferencer picks the provider from the environment. Gemini wins when
// both keys are present since it also serves cover art; with no key at all
// the OpenAI client points at a local inference server and the gateway
// reports unconfigured, answering every AI request with its fixed message.
func buildInferencer() (inference.Inferencer, bool) {
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		gem, err := inference.NewGeminiInferencer(geminiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("failed creating gemini client: %v", err)
		}
		return gem, true
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	openAI := inference.NewOpenAIInferencer(apiKey, model)
	if apiKey == "" {
		openAI.ChangeBaseURL("http://localhost:1234/v1")
		openAI.SetModel("")
		return openAI, false
	}
	return openAI, true
}

// autosaveLoop snapshots the manuscript on a fixed interval until shutdown;
// Shutdown itself takes the final snapshot.
func autosaveLoop(ctx context.Context, srv *server.Server) {
	ticker := time.NewTicker(autosaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := srv.Autosave(); err != nil {
				log.Warnf("autosave failed: %v", err)
			}
		}
	}
}
