package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/config"
	"github.com/vitalvision/vitalvision/internal/logging"
	"github.com/vitalvision/vitalvision/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vitalvision",
	Short: "Terminal symptom checker",
	Long: "Vital Vision asks a short series of yes/no symptom questions and suggests the most\n" +
		"likely condition from a naive Bayes model trained on a labeled dataset.\n\n" +
		"It is not a medical device. Always consult a healthcare professional.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd)
	},
}

// Resolved by setup before any subcommand runs.
var (
	cfg    config.Config
	logger *slog.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides "+logging.EnvLevel+")")
	rootCmd.PersistentFlags().String("log-file", "", "File receiving logs during the interactive checkup (overrides "+config.EnvLogFile+")")
	rootCmd.PersistentFlags().String("data", "", "Training dataset, CSV, TSV or SQLite (overrides "+config.EnvDataset+")")
	rootCmd.PersistentFlags().String("db", "", "Path to the model snapshot database (overrides "+config.EnvModelDB+")")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration in priority order: flags, then environment,
// then the config file, then defaults. It also installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	loaded.ApplyEnv()

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		loaded.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		loaded.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		loaded.DatasetPath = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		loaded.ModelDB = v
	}

	logger = logging.Configure(os.Stderr, loaded.LogLevel)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded
	return nil
}

// resolveDBPath returns the snapshot database path: --db or the config value
// first, then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.ModelDB != "" {
		return cfg.ModelDB, nil
	}
	return store.DefaultDBPath()
}
