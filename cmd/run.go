package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akrishn/studyhub/internal/app"
	"github.com/akrishn/studyhub/internal/breaks"
	"github.com/akrishn/studyhub/internal/coach"
	"github.com/akrishn/studyhub/internal/config"
	"github.com/akrishn/studyhub/internal/content"
	"github.com/akrishn/studyhub/internal/llm"
	"github.com/akrishn/studyhub/internal/study"
	"github.com/spf13/cobra"
)

// runApp loads content and config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sessions, err := content.Load(cfg.ContentPath)
	if err != nil {
		var notFound *content.NotFoundError
		var malformed *content.MalformedError
		switch {
		case errors.As(err, &notFound):
			return fmt.Errorf("content file %s not found — point --content (or STUDYHUB_CONTENT) at your learning JSON", cfg.ContentPath)
		case errors.As(err, &malformed):
			return fmt.Errorf("content file %s is not valid learning JSON: %w\nRun 'studyhub validate' for details", cfg.ContentPath, err)
		default:
			return fmt.Errorf("load content: %w", err)
		}
	}

	opts := app.Options{
		Tracker: study.NewTracker(sessions),
		Timer:   breaks.NewTimer(cfg.BreakThreshold(), time.Now()),
	}

	provider, err := buildProvider(cmd, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The interview coach will be unavailable.")
	} else {
		opts.Coach = coach.NewService(provider, coach.DefaultConfig())
	}

	return app.Run(opts)
}

// buildProvider creates the LLM provider named in config, falling back to
// env-var discovery when the config is silent.
func buildProvider(cmd *cobra.Command, cfg config.Config) (llm.Provider, error) {
	ctx := cmd.Context()

	if cfg.LLMProvider != "" {
		llmCfg := llm.ConfigFromEnv()
		llmCfg.Provider = cfg.LLMProvider
		return llm.NewProvider(ctx, llmCfg, os.Stderr)
	}
	return llm.NewProviderFromEnv(ctx, os.Stderr)
}
