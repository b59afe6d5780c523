package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/store"
)

const defaultKeep = 5

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train on the dataset and store a model snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pipeline, err := diagnosis.Train(ctx, cfg, logger)
		if err != nil {
			return err
		}
		data, err := json.Marshal(pipeline.Snapshot())
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.SnapshotRepo()
		snap := &store.Snapshot{
			FormatVersion: diagnosis.SnapshotVersion,
			Source:        pipeline.Stats().Source,
			Data:          data,
		}
		if err := repo.Save(ctx, snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		keep, _ := cmd.Flags().GetInt("keep")
		if keep > 0 {
			if err := repo.Prune(ctx, keep); err != nil {
				return fmt.Errorf("prune snapshots: %w", err)
			}
		}

		logger.Info("snapshot saved", "db", dbPath, "sequence", snap.Sequence)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved model snapshot #%d to %s\n", snap.Sequence, dbPath)
		return nil
	},
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored model snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		snaps, err := st.SnapshotRepo().List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(snaps) == 0 {
			fmt.Fprintln(out, "No snapshots stored.")
			return nil
		}
		for _, s := range snaps {
			fmt.Fprintf(out, "#%-4d %s  %-8s %s\n",
				s.Sequence, s.Timestamp.Local().Format(time.DateTime), s.FormatVersion, s.Source)
		}
		return nil
	},
}

func init() {
	trainCmd.Flags().Int("keep", defaultKeep, "Number of snapshots to retain; 0 keeps all")
	snapshotsCmd.Flags().Int("limit", 0, "Maximum number of snapshots to list; 0 lists all")
}
