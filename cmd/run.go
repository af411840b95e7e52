package cmd

import (
	"fmt"

	"trivium/internal/app"
	"trivium/internal/quizbank"
	"trivium/internal/trainer"

	"github.com/spf13/cobra"
)

// runApp loads the question bank, builds the trainer, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	bank, err := quizbank.Load(cfg.QuestionsPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	tr := trainer.New(bank, trainer.Options{
		WeakThreshold: cfg.WeakThreshold,
		WeakLimit:     cfg.WeakLimit,
	})

	return app.Run(tr, cfg)
}
