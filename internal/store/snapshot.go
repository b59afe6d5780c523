package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitalvision/vitalvision/ent"
	"github.com/vitalvision/vitalvision/ent/modelsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if len(snap.Data) == 0 {
		return errors.New("save snapshot: empty data")
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	s, err := r.client.ModelSnapshot.Create().
		SetSequence(seq).
		SetCreatedAt(snap.Timestamp.UTC()).
		SetFormatVersion(snap.FormatVersion).
		SetSource(snap.Source).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = int64(s.ID)
	snap.Sequence = s.Sequence
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.ModelSnapshot.Query().
		Order(ent.Desc(modelsnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	out := entSnapshotToSnapshot(s)
	return &out, nil
}

func (r *snapshotRepo) List(ctx context.Context, limit int) ([]Snapshot, error) {
	q := r.client.ModelSnapshot.Query().
		Order(ent.Desc(modelsnapshot.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Select(
		modelsnapshot.FieldSequence,
		modelsnapshot.FieldCreatedAt,
		modelsnapshot.FieldFormatVersion,
		modelsnapshot.FieldSource,
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]Snapshot, 0, len(rows))
	for _, s := range rows {
		out = append(out, entSnapshotToSnapshot(s))
	}
	return out, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	// Find the threshold: the sequence of the (keep+1)th most recent snapshot.
	older, err := r.client.ModelSnapshot.Query().
		Order(ent.Desc(modelsnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(older) == 0 {
		return nil // fewer than keep snapshots exist
	}

	_, err = r.client.ModelSnapshot.Delete().
		Where(modelsnapshot.SequenceLTE(older[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// entSnapshotToSnapshot converts an ent ModelSnapshot to a store Snapshot.
// Data stays nil when the query did not select it.
func entSnapshotToSnapshot(s *ent.ModelSnapshot) Snapshot {
	out := Snapshot{
		ID:            int64(s.ID),
		Sequence:      s.Sequence,
		Timestamp:     s.CreatedAt.UTC(),
		FormatVersion: s.FormatVersion,
		Source:        s.Source,
	}
	if len(s.Data) > 0 {
		out.Data = s.Data
	}
	return out
}
