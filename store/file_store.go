package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"tomatolog/models"
	"tomatolog/types"
)

const (
	// defaultFileName keeps the ledger shared with the clock UI and the
	// other companion tooling reading ~/.tomato_clock.json.
	defaultFileName = ".tomato_clock.json"
	lockSuffix      = ".lock"
	tempPattern     = ".tomato_clock_*.json"

	// DefaultLockTimeout bounds the wait for the cross-process lock.
	DefaultLockTimeout = 10 * time.Second

	lockRetryDelay = 50 * time.Millisecond
)

// FileLedgerStore implements LedgerStore on a single JSON file. Writes go to
// a temporary file in the target directory followed by an atomic rename; the
// rename is guarded by a cross-process advisory lock on <path>.lock so
// concurrent savers from independent processes are strictly ordered.
type FileLedgerStore struct {
	filePath    string
	lockTimeout time.Duration
	flk         *flock.Flock

	// mu serializes this process's load-mutate-save cycles in Update. The
	// file lock only covers the replace step, not the whole cycle.
	mu sync.Mutex
}

// NewFileLedgerStore creates a store for the given ledger path. An empty
// path selects the shared ledger in the user's home directory; a
// non-positive lockTimeout selects DefaultLockTimeout.
func NewFileLedgerStore(path string, lockTimeout time.Duration) (*FileLedgerStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, defaultFileName)
	}
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &FileLedgerStore{
		filePath:    path,
		lockTimeout: lockTimeout,
		flk:         flock.New(path + lockSuffix),
	}, nil
}

// Path returns the ledger file path.
func (s *FileLedgerStore) Path() string {
	return s.filePath
}

// Load reads the ledger file. A missing file bootstraps a fresh ledger.
func (s *FileLedgerStore) Load() (*models.Ledger, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewLedger(), nil
		}
		return nil, &types.StoreError{Op: "load", Path: s.filePath, Err: err}
	}
	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, &types.StoreError{Op: "decode", Path: s.filePath, Err: err}
	}
	// Companion tooling expects the arrays to be present, not null.
	if ledger.Tasks == nil {
		ledger.Tasks = []models.Task{}
	}
	if ledger.Sessions == nil {
		ledger.Sessions = []models.Session{}
	}
	return &ledger, nil
}

// Save atomically replaces the ledger file with the given document.
func (s *FileLedgerStore) Save(ledger *models.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return &types.StoreError{Op: "encode", Path: s.filePath, Err: err}
	}

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return &types.StoreError{Op: "save", Path: s.filePath, Err: err}
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &types.StoreError{Op: "save", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &types.StoreError{Op: "save", Path: tmpPath, Err: err}
	}

	if err := s.replaceLocked(tmpPath); err != nil {
		return err
	}
	committed = true
	return nil
}

// replaceLocked renames the temp file over the ledger file while holding the
// cross-process lock, waiting at most lockTimeout for it.
func (s *FileLedgerStore) replaceLocked(tmpPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	locked, err := s.flk.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return types.ErrLockTimeout
		}
		return &types.StoreError{Op: "lock", Path: s.flk.Path(), Err: err}
	}
	if !locked {
		return types.ErrLockTimeout
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return &types.StoreError{Op: "save", Path: s.filePath, Err: err}
	}
	return nil
}

// Update runs one load-mutate-save cycle under the in-process mutex.
func (s *FileLedgerStore) Update(mutate func(*models.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.Load()
	if err != nil {
		return err
	}
	if err := mutate(ledger); err != nil {
		return err
	}
	return s.Save(ledger)
}

// Close releases the file lock if it is still held. Unlock is idempotent.
func (s *FileLedgerStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
