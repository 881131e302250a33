package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/vbonduro/menuscan/internal/config"
	"github.com/vbonduro/menuscan/internal/logging"
	"github.com/vbonduro/menuscan/internal/menu"
	claudemenu "github.com/vbonduro/menuscan/internal/menu/claude"
	geminimenu "github.com/vbonduro/menuscan/internal/menu/gemini"
	ollamamenu "github.com/vbonduro/menuscan/internal/menu/ollama"
	openaimenu "github.com/vbonduro/menuscan/internal/menu/openai"
	"github.com/vbonduro/menuscan/internal/photostore/memory"
	"github.com/vbonduro/menuscan/internal/service"
	"github.com/vbonduro/menuscan/internal/web"
	"github.com/vbonduro/menuscan/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	analyzer, closeAnalyzer := newAnalyzer(context.Background(), cfg, logger)
	defer closeAnalyzer()

	orderService := service.NewOrderService(memory.NewPhotoStore(), analyzer, cfg.SessionTTL, cfg.MaxPages, logger)
	server := web.NewServer(orderService, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

// newAnalyzer builds the configured backend. When it cannot be built the
// returned analyzer fails every request with the construction error, so the
// rest of the application stays usable.
func newAnalyzer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (menu.Analyzer, func()) {
	noop := func() {}
	unavailable := func(backend string, err error) (menu.Analyzer, func()) {
		if errors.Is(err, menu.ErrMissingCredential) {
			logger.Warn("menu analysis disabled: api key is not configured", "backend", backend)
		} else {
			logger.Error("menu analysis disabled", "backend", backend, "error", err)
		}
		return menu.Unavailable{Err: err}, noop
	}

	switch strings.ToLower(cfg.VisionBackend) {
	case "claude":
		a, err := claudemenu.NewClaudeAnalyzer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
		if err != nil {
			return unavailable("claude", err)
		}
		logger.Info("using Claude menu backend", "model", cfg.ClaudeModel)
		return a, noop
	case "openai":
		a, err := openaimenu.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return unavailable("openai", err)
		}
		logger.Info("using OpenAI menu backend", "model", cfg.OpenAIModel)
		return a, noop
	case "ollama":
		logger.Info("using Ollama menu backend", "model", cfg.OllamaModel)
		return ollamamenu.NewOllamaAnalyzer(cfg.OllamaHost, cfg.OllamaModel), noop
	default:
		a, err := geminimenu.NewGeminiAnalyzer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return unavailable("gemini", err)
		}
		logger.Info("using Gemini menu backend", "model", cfg.GeminiModel)
		return a, func() {
			if err := a.Close(); err != nil {
				logger.Error("failed to close gemini client", "error", err)
			}
		}
	}
}
