package cmd

import (
	"trivium/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trivium",
	Short: "Adaptive trivia trainer for the terminal",
	Long:  "Trivium — a terminal trivia trainer that maps your weak topics and drills them until they stick.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to the question bank JSON file (overrides TRIVIUM_QUESTIONS env var)")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the runtime config using the --questions flag
// (highest priority), then the environment, then the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.QuestionsPath = p
	}
	return cfg, cfg.Validate()
}
