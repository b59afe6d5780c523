package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/session"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [symptom...]",
	Short: "Diagnose a symptom list without the interactive UI",
	Long: "Diagnose scores the given symptoms, named as dataset columns (for example\n" +
		"fever cough runny_nose). Names may also be comma separated. With no\n" +
		"symptoms the model reports its prior.",
	Example: "  vitalvision diagnose fever cough\n  vitalvision diagnose rash,itching --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := loadPipeline(cmd)
		if err != nil {
			return err
		}
		advice, err := cfg.RecommendationTable()
		if err != nil {
			return fmt.Errorf("load recommendations: %w", err)
		}

		symptoms := splitSymptoms(args)
		res, err := pipeline.Diagnose(symptoms)
		if err != nil {
			return fmt.Errorf("diagnose: %w", err)
		}
		d := session.Diagnosis{
			Label:           res.Label,
			Confidence:      res.Confidence,
			Recommendations: advice.Lookup(res.Label),
			Symptoms:        symptoms,
		}

		out := cmd.OutOrStdout()
		printDiagnosis(out, d)
		if all, _ := cmd.Flags().GetBool("all"); all {
			printProbabilities(out, res.Probabilities)
		}
		return nil
	},
}

func init() {
	addModelFlags(diagnoseCmd)
	diagnoseCmd.Flags().Bool("all", false, "Also print the probability of every condition")
}

func splitSymptoms(args []string) []string {
	var out []string
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func printDiagnosis(w io.Writer, d session.Diagnosis) {
	fmt.Fprintf(w, "Diagnosis: %s\n", d.Label)
	fmt.Fprintf(w, "Confidence: %s\n", d.ConfidenceText())
	fmt.Fprintln(w, "Recommendations:")
	for i, r := range d.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}
}

func printProbabilities(w io.Writer, probs map[string]float64) {
	labels := make([]string, 0, len(probs))
	for l := range probs {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		if probs[labels[i]] != probs[labels[j]] {
			return probs[labels[i]] > probs[labels[j]]
		}
		return labels[i] < labels[j]
	})
	fmt.Fprintln(w, "Probabilities:")
	for _, l := range labels {
		fmt.Fprintf(w, "  %-24s %6.2f%%\n", l, probs[l]*100)
	}
}
