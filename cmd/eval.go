package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/diagnosis"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Report accuracy on the held-out split of the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := diagnosis.Train(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		ev, err := pipeline.Evaluate()
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}

		st := pipeline.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dataset:    %s (%d rows)\n", st.Source, st.Rows)
		fmt.Fprintf(out, "Training:   %d rows, %d terms, %d conditions\n", st.TrainRows, st.Vocabulary, st.Classes)
		if ev.Rows == 0 {
			fmt.Fprintln(out, "Held out:   none (held_out_fraction is 0)")
			return nil
		}
		fmt.Fprintf(out, "Held out:   %d rows, %d correct\n", ev.Rows, ev.Correct)
		fmt.Fprintf(out, "Accuracy:   %.2f%%\n", ev.Accuracy*100)
		return nil
	},
}
