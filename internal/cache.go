package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheManager keeps paired history snapshots on disk so the history can be
// browsed and exported without refetching. Snapshots are JSON files beside a
// YAML index; the server stays authoritative, a fetch always overwrites.
type CacheManager struct {
	cacheDir string
}

// Snapshot is one cached history fetch.
type Snapshot struct {
	UserID    string    `json:"user_id,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	Turns     []Turn    `json:"turns"`
}

// SnapshotIndexEntry describes a snapshot in the index.
type SnapshotIndexEntry struct {
	Name      string    `yaml:"name"`
	UserID    string    `yaml:"user_id,omitempty"`
	FetchedAt time.Time `yaml:"fetched_at"`
	TurnCount int       `yaml:"turn_count"`
}

// SnapshotIndex is the YAML index of all cached snapshots.
type SnapshotIndex struct {
	Snapshots []SnapshotIndexEntry `yaml:"snapshots"`
	UpdatedAt time.Time            `yaml:"updated_at"`
}

// NewCacheManager creates a cache manager rooted at cacheDir, or at
// ~/.wandersync/cache when cacheDir is empty.
func NewCacheManager(cacheDir string) (*CacheManager, error) {
	if cacheDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(homeDir, ".wandersync", "cache")
	}
	return &CacheManager{cacheDir: cacheDir}, nil
}

// Dir returns the cache directory path.
func (cm *CacheManager) Dir() string {
	return cm.cacheDir
}

func (cm *CacheManager) ensureDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

func (cm *CacheManager) indexPath() string {
	return filepath.Join(cm.cacheDir, "snapshots.yaml")
}

func (cm *CacheManager) snapshotPath(name string) string {
	return filepath.Join(cm.cacheDir, fmt.Sprintf("snapshot_%s.json", name))
}

// SaveSnapshot writes a snapshot under name and updates the index.
func (cm *CacheManager) SaveSnapshot(name string, snap *Snapshot) error {
	if err := cm.ensureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(cm.snapshotPath(name), data, 0644); err != nil {
		return err
	}

	index, err := cm.LoadIndex()
	if err != nil {
		index = &SnapshotIndex{}
	}

	entry := SnapshotIndexEntry{
		Name:      name,
		UserID:    snap.UserID,
		FetchedAt: snap.FetchedAt,
		TurnCount: len(snap.Turns),
	}

	found := false
	for i, existing := range index.Snapshots {
		if existing.Name == name {
			index.Snapshots[i] = entry
			found = true
			break
		}
	}
	if !found {
		index.Snapshots = append(index.Snapshots, entry)
	}
	index.UpdatedAt = time.Now()

	return cm.saveIndex(index)
}

// LoadSnapshot reads the snapshot saved under name.
func (cm *CacheManager) LoadSnapshot(name string) (*Snapshot, error) {
	data, err := os.ReadFile(cm.snapshotPath(name))
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// LoadIndex loads the snapshot index.
func (cm *CacheManager) LoadIndex() (*SnapshotIndex, error) {
	data, err := os.ReadFile(cm.indexPath())
	if err != nil {
		return nil, err
	}

	var index SnapshotIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}
	return &index, nil
}

func (cm *CacheManager) saveIndex(index *SnapshotIndex) error {
	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	return os.WriteFile(cm.indexPath(), data, 0644)
}

// ClearCache removes all snapshots and the index.
func (cm *CacheManager) ClearCache() error {
	index, err := cm.LoadIndex()
	if err == nil {
		for _, entry := range index.Snapshots {
			_ = os.Remove(cm.snapshotPath(entry.Name))
		}
	}

	if err := os.Remove(cm.indexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
