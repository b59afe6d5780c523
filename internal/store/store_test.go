package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/vitalvision/vitalvision/ent"
	"github.com/vitalvision/vitalvision/ent/modelsnapshot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func countSnapshots(t *testing.T, s *Store) int {
	t.Helper()
	n, err := s.Client().ModelSnapshot.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func saveN(t *testing.T, repo SnapshotRepo, n int) {
	t.Helper()
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < n; i++ {
		err := repo.Save(context.Background(), &Snapshot{
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
			FormatVersion: "v1.0.0",
			Source:        "medical_data.csv",
			Data:          json.RawMessage(`{"n":` + string(rune('0'+i)) + `}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestFileStoreUsesWAL.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileStoreUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "models.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	in := &Snapshot{
		Timestamp:     now,
		FormatVersion: "v1.0.0",
		Source:        "data.tsv",
		Data:          json.RawMessage(`{"version":"v1.0.0"}`),
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if in.ID == 0 || in.Sequence != 1 {
		t.Errorf("save assigned id=%d sequence=%d, want non-zero id and sequence 1", in.ID, in.Sequence)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 1 || snap.Source != "data.tsv" || snap.FormatVersion != "v1.0.0" {
		t.Errorf("latest = %+v", snap)
	}
	if !snap.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, now)
	}
	if string(snap.Data) != `{"version":"v1.0.0"}` {
		t.Errorf("data = %s", snap.Data)
	}
}

func TestSnapshotSaveRejectsEmptyData(t *testing.T) {
	s := openTestStore(t)
	if err := s.SnapshotRepo().Save(context.Background(), &Snapshot{}); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestSnapshotSaveRejectsEmptyFormatVersion(t *testing.T) {
	s := openTestStore(t)
	err := s.SnapshotRepo().Save(context.Background(), &Snapshot{
		Source: "data.tsv",
		Data:   json.RawMessage(`{}`),
	})
	if err == nil {
		t.Fatal("expected error for empty format version")
	}
	if !ent.IsValidationError(err) {
		t.Errorf("err = %v, want an ent validation error", err)
	}
}

func TestSnapshotRowsWrittenThroughClient(t *testing.T) {
	s := openTestStore(t)
	saveN(t, s.SnapshotRepo(), 2)

	rows, err := s.Client().ModelSnapshot.Query().
		Where(modelsnapshot.SourceEQ("medical_data.csv")).
		Order(ent.Asc(modelsnapshot.FieldSequence)).
		All(context.Background())
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 || rows[0].Sequence != 1 || rows[1].Sequence != 2 {
		t.Fatalf("rows = %v", rows)
	}
	if rows[0].CreatedAt.After(rows[1].CreatedAt) {
		t.Error("created_at not carried from the saved timestamps")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	saveN(t, repo, 3)

	snap, err := repo.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if string(snap.Data) != `{"n":2}` {
		t.Errorf("data = %s, want the third snapshot", snap.Data)
	}
}

func TestSnapshotList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	saveN(t, repo, 4)

	all, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("listed %d snapshots, want 4", len(all))
	}
	for i, snap := range all {
		if want := int64(4 - i); snap.Sequence != want {
			t.Errorf("all[%d].Sequence = %d, want %d", i, snap.Sequence, want)
		}
		if snap.Data != nil {
			t.Errorf("all[%d] carries data", i)
		}
	}

	two, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(two) != 2 || two[0].Sequence != 4 {
		t.Errorf("limited list = %+v", two)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()
	saveN(t, repo, 7)

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := countSnapshots(t, s); n != 5 {
		t.Errorf("remaining snapshots = %d, want 5", n)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}

	// Sequences keep increasing after a prune.
	saveN(t, repo, 1)
	snap, _ = repo.Latest(ctx)
	if snap.Sequence != 8 {
		t.Errorf("sequence after prune = %d, want 8", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	saveN(t, repo, 2)

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(context.Background(), 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := countSnapshots(t, s); n != 2 {
		t.Errorf("remaining snapshots = %d, want 2", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='model_snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "model_snapshots" {
		t.Errorf("table name = %q, want 'model_snapshots'", name)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv(EnvDB, filepath.Join(dir, "custom", "m.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join(dir, "custom", "m.db") {
		t.Errorf("env path = %q", p)
	}

	t.Setenv(EnvDB, "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "vitalvision", "models.db"); p != want {
		t.Errorf("xdg path = %q, want %q", p, want)
	}
}
