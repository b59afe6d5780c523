package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank in asking order",
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := catalog.NormalizeQuestions(cfg.Questions)
		if err != nil {
			return fmt.Errorf("questions: %w", err)
		}
		out := cmd.OutOrStdout()
		for i, q := range qs {
			fmt.Fprintf(out, "%2d. %-22s %s\n", i+1, q.Symptom, q.Prompt)
		}
		return nil
	},
}
