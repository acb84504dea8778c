package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlorentedev/revisor/internal/adapter"
	"github.com/mlorentedev/revisor/internal/audit"
	"github.com/mlorentedev/revisor/internal/config"
	"github.com/mlorentedev/revisor/internal/handler"
	"github.com/mlorentedev/revisor/internal/server"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of real LLM backends")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	styleGuide := ""
	if cfg.StyleGuidePath != "" {
		data, err := os.ReadFile(cfg.StyleGuidePath)
		if err != nil {
			log.Fatalf("style guide: read %s: %v", cfg.StyleGuidePath, err)
		}
		styleGuide = string(data)
	}

	adapters, models := buildAdapters(cfg, *useMock)
	defaultModel := cfg.DefaultModel
	if defaultModel == "" && len(models) > 0 {
		defaultModel = models[0].ID
	}
	if _, ok := adapters[defaultModel]; !ok {
		log.Fatalf("config: default_model %q is not a configured adapter", defaultModel)
	}

	opts := handler.Options{
		DefaultModel: defaultModel,
		PromptStyle:  audit.Style(cfg.PromptStyle),
		StyleGuide:   styleGuide,
	}
	mux := server.SetupMux(adapters, models, opts, cfg.APIKey, version)

	if cfg.APIKey != "" {
		log.Println("auth: API key required (X-API-Key header)")
	} else {
		log.Println("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("revisor api listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

func buildAdapters(cfg config.Config, useMock bool) (map[string]adapter.LLMAdapter, []adapter.ModelInfo) {
	adapters := make(map[string]adapter.LLMAdapter)
	var models []adapter.ModelInfo

	if useMock {
		adapters["mock"] = &adapter.MockAdapter{Delay: 500 * time.Millisecond}
		models = append(models, adapter.ModelInfo{ID: "mock", Name: "Mock (dev)", Provider: "mock"})
		log.Println("mode: mock adapter enabled")
		return adapters, models
	}

	// OpenAI is always registered. Without a key its requests fail with a
	// misconfiguration error instead of the server refusing to start.
	openai := adapter.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, &http.Client{Timeout: 120 * time.Second})
	adapters[cfg.OpenAIModel] = openai
	models = append(models, adapter.ModelInfo{ID: cfg.OpenAIModel, Name: "OpenAI (" + cfg.OpenAIModel + ")", Provider: "openai"})
	if cfg.OpenAIAPIKey != "" {
		log.Printf("mode: openai enabled (model: %s)", cfg.OpenAIModel)
	} else {
		log.Printf("mode: openai registered without API key (model: %s)", cfg.OpenAIModel)
	}

	if cfg.ClaudeAPIKey != "" {
		claude := &adapter.ClaudeAdapter{
			APIKey: cfg.ClaudeAPIKey,
			Model:  cfg.ClaudeModel,
			Client: &http.Client{Timeout: 120 * time.Second},
		}
		adapters[cfg.ClaudeModel] = claude
		models = append(models, adapter.ModelInfo{ID: cfg.ClaudeModel, Name: "Claude (" + cfg.ClaudeModel + ")", Provider: "claude"})
		log.Printf("mode: claude enabled (model: %s)", cfg.ClaudeModel)
	}

	if cfg.OllamaURL != "" {
		ollama := &adapter.OllamaAdapter{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaModel,
			Client:  &http.Client{Timeout: 120 * time.Second},
		}
		adapters[cfg.OllamaModel] = ollama
		models = append(models, adapter.ModelInfo{ID: cfg.OllamaModel, Name: "Ollama (" + cfg.OllamaModel + ")", Provider: "ollama"})
		log.Printf("mode: ollama at %s (model: %s)", cfg.OllamaURL, cfg.OllamaModel)
	}

	return adapters, models
}
