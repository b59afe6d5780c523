package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvision/vitalvision/internal/diagnosis"
	"github.com/vitalvision/vitalvision/internal/store"
)

var errNoSnapshot = errors.New("no stored model snapshot; run 'vitalvision train' first")

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("from-snapshot", false, "Use the latest stored model instead of training from the dataset")
}

// loadPipeline trains on the configured dataset, or restores the latest
// stored snapshot when --from-snapshot is set.
func loadPipeline(cmd *cobra.Command) (*diagnosis.Pipeline, error) {
	ctx := cmd.Context()
	if fromSnap, _ := cmd.Flags().GetBool("from-snapshot"); fromSnap {
		return restoreLatest(ctx)
	}
	return diagnosis.Train(ctx, cfg, logger)
}

func restoreLatest(ctx context.Context) (*diagnosis.Pipeline, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	latest, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if latest == nil {
		return nil, errNoSnapshot
	}

	var snap diagnosis.Snapshot
	if err := json.Unmarshal(latest.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", latest.Sequence, err)
	}
	p, err := diagnosis.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %d: %w", latest.Sequence, err)
	}
	logger.Info("model restored",
		"sequence", latest.Sequence,
		"saved", latest.Timestamp,
		"source", latest.Source,
		"classes", p.Stats().Classes,
	)
	return p, nil
}
