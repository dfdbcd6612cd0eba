package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileStore writes one indented JSON file per game.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save creates game_<timestamp>_<id8>.json. The file is created exclusively so
// concurrent sessions can never overwrite each other.
func (s *FileStore) Save(_ context.Context, r Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create records dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	name := fmt.Sprintf("game_%s_%s.json", r.Timestamp.Format("20060102_150405"), r.ID[:8])
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create record file: %w", err)
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write record file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close record file: %w", err)
	}
	return path, nil
}

// List reads every record in the directory, oldest first. A missing directory
// means no games were played yet.
func (s *FileStore) List(_ context.Context) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "game_*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob records: %w", err)
	}
	out := make([]Record, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var r Record
		if err = json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *FileStore) Close() error { return nil }
