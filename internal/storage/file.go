// Package storage persists the ledger aggregate as JSON blobs on local disk.
// It is the only I/O boundary of the core: one document for the collections,
// one for company settings, rewritten wholesale after every mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/veewell/veewell-erp/internal/ledger"
)

const (
	dataFile     = "erp_data.json"
	settingsFile = "company_settings.json"
)

// FileStore reads and writes snapshot documents under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("storage: data directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the aggregate snapshot.
func (f *FileStore) Load(ctx context.Context) (ledger.Snapshot, error) {
	var snap ledger.Snapshot
	if err := f.read(dataFile, &snap); err != nil {
		return ledger.Snapshot{}, err
	}
	return snap, nil
}

// Save rewrites the aggregate snapshot.
func (f *FileStore) Save(ctx context.Context, snap ledger.Snapshot) error {
	return f.write(dataFile, snap)
}

// LoadSettings reads the company settings document.
func (f *FileStore) LoadSettings(ctx context.Context) (ledger.CompanySettings, error) {
	var settings ledger.CompanySettings
	if err := f.read(settingsFile, &settings); err != nil {
		return ledger.CompanySettings{}, err
	}
	return settings, nil
}

// SaveSettings rewrites the company settings document.
func (f *FileStore) SaveSettings(ctx context.Context, settings ledger.CompanySettings) error {
	return f.write(settingsFile, settings)
}

func (f *FileStore) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.ErrSnapshotNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", name, err)
	}
	return nil
}

// write lands the document via a temp file and rename so a crash mid-write
// never leaves a truncated snapshot behind.
func (f *FileStore) write(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("storage: close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(f.dir, name)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("storage: replace %s: %w", name, err)
	}
	return nil
}
