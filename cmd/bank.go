package cmd

import (
	"fmt"

	"trivium/internal/quizbank"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate the question bank and show its topic coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		bank, err := quizbank.Load(cfg.QuestionsPath)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		topics := bank.Topics()
		fmt.Printf("%s: %d questions across %d topics\n\n", cfg.QuestionsPath, bank.Len(), len(topics))

		nameWidth := len("Topic")
		for _, t := range topics {
			if len(t) > nameWidth {
				nameWidth = len(t)
			}
		}

		fmt.Printf("%-*s  %6s  %6s  %6s  %6s\n", nameWidth, "Topic", "Easy", "Medium", "Hard", "Total")
		for _, t := range topics {
			counts := bank.Counts(t)
			total := counts[quizbank.DifficultyEasy] + counts[quizbank.DifficultyMedium] + counts[quizbank.DifficultyHard]
			fmt.Printf("%-*s  %6d  %6d  %6d  %6d\n", nameWidth, t,
				counts[quizbank.DifficultyEasy], counts[quizbank.DifficultyMedium], counts[quizbank.DifficultyHard], total)
		}

		return nil
	},
}
