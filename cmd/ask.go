package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/app"
	"github.com/vitalvision/vitalvision/internal/catalog"
	"github.com/vitalvision/vitalvision/internal/logging"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Start an interactive symptom checkup (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd)
	},
}

func init() {
	addModelFlags(askCmd)
	addModelFlags(rootCmd)
	askCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}

// runAsk prepares the model and advice table, then launches the TUI. Dataset
// errors stop here before any question is asked.
func runAsk(cmd *cobra.Command) error {
	pipeline, err := loadPipeline(cmd)
	if err != nil {
		return err
	}
	advice, err := cfg.RecommendationTable()
	if err != nil {
		return fmt.Errorf("load recommendations: %w", err)
	}
	questions, err := catalog.NormalizeQuestions(cfg.Questions)
	if err != nil {
		return fmt.Errorf("questions: %w", err)
	}
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	// The alternate screen owns the terminal; stderr records would tear it.
	tuiLogger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(app.Options{
		Diagnoser:   pipeline,
		Stats:       pipeline.Stats(),
		Questions:   questions,
		Advisor:     advice,
		Logger:      tuiLogger,
		SkipWelcome: skipSplash,
	})
}
