package store

import (
	"context"
	"encoding/json"
	"time"
)

// Snapshot is one stored model. Data is the encoded model state; its layout
// is owned by the caller and tagged with FormatVersion.
type Snapshot struct {
	ID            int64
	Sequence      int64
	Timestamp     time.Time
	FormatVersion string
	Source        string
	Data          json.RawMessage
}

// SnapshotRepo manages model snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot and fills in its ID and Sequence. A zero
	// Timestamp is set to the current time.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// List returns up to limit snapshots, newest first, without Data.
	// limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
