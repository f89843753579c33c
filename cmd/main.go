package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	glog "github.com/labstack/gommon/log"

	"fable/pkg/config"
	"fable/pkg/illustrate"
	"fable/pkg/inference"
	"fable/pkg/server"
	"fable/pkg/store"
	"fable/pkg/story"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var text inference.Inferencer
	if cfg.TextReady() {
		text, err = newInferencer(cfg)
		if err != nil {
			log.Fatal(err)
		}
		log.Info("text generation ready", "provider", cfg.TextProvider)
	} else {
		log.Warn("no text provider key configured, stories will use the mock generator")
	}

	var images *illustrate.Client
	if cfg.ImageReady() {
		images = illustrate.New(cfg.ImageEndpoint)
		log.Info("illustrations enabled", "endpoint", cfg.ImageEndpoint)
	} else {
		log.Info("no image endpoint configured, stories will be text-only")
	}

	svc := story.NewService(text, images)
	st := store.Open(cfg.StorePath)
	srv := server.NewServer(svc, st)
	srv.Echo.Logger.SetLevel(glog.INFO)

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error(err)
		}
		done()
		close(finishedShutDown)
	}()

	log.Info("server listening", "addr", cfg.Addr)
	if err := srv.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}

// newInferencer is the startup factory selecting the text provider; nothing
// downstream knows which backend is in use.
func newInferencer(cfg config.Config) (inference.Inferencer, error) {
	switch cfg.TextProvider {
	case config.ProviderGrok:
		return inference.NewGrokInferencer(cfg.GrokKey, cfg.GrokModel), nil
	case config.ProviderGemini:
		return inference.NewGeminiInferencer(cfg.GeminiKey, cfg.GeminiModel)
	default:
		return inference.NewOpenAIInferencer(cfg.OpenAIKey, cfg.OpenAIModel), nil
	}
}
