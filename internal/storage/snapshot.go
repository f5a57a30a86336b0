// Package storage is the explicit save/load boundary for the store:
// one JSON snapshot file on local disk, plus the embedded seed catalog
// used when no snapshot exists yet.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

// ErrNoSnapshot is returned by Load when the snapshot file does not
// exist; callers fall back to the seed catalog.
var ErrNoSnapshot = errors.New("storage: no snapshot file")

// SnapshotFile persists store snapshots to a single JSON file. It
// implements store.Saver.
type SnapshotFile struct {
	path string
	log  *zap.Logger
}

// NewSnapshotFile points the persistence boundary at path. log may be
// nil.
func NewSnapshotFile(path string, log *zap.Logger) *SnapshotFile {
	if log == nil {
		log = zap.NewNop()
	}
	return &SnapshotFile{path: path, log: log}
}

// Path returns the snapshot file location.
func (f *SnapshotFile) Path() string { return f.path }

// Load reads and decodes the snapshot. A missing file yields
// ErrNoSnapshot; a malformed file yields the decode error.
func (f *SnapshotFile) Load() (store.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.Snapshot{}, ErrNoSnapshot
		}
		return store.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return store.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", f.path, err)
	}
	f.log.Debug("snapshot loaded",
		zap.String("path", f.path),
		zap.Int("products", len(snap.Products)),
		zap.Int("orders", len(snap.Orders)))
	return snap, nil
}

// Save serializes the snapshot over the previous one. Last write wins;
// there is no transactional grouping across fields.
func (f *SnapshotFile) Save(snap store.Snapshot) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Remove deletes the snapshot file; used by the reset flag. A missing
// file is not an error.
func (f *SnapshotFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
