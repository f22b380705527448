package store

import "tomatolog/models"

// LedgerStore defines the interface for ledger persistence. The ledger is a
// single whole-document resource: Load and Save move the complete document,
// and Update wraps one load-mutate-save cycle.
type LedgerStore interface {
	// Load reads the current ledger. A missing file is not an error; it
	// yields a fresh ledger with both counters at 1. A file that exists
	// but does not decode is fatal.
	Load() (*models.Ledger, error)

	// Save atomically replaces the ledger file with the given document.
	// Concurrent savers from other processes are serialized by a file
	// lock with a bounded wait; a reader observes either the complete
	// pre-save or complete post-save content, never a partial write.
	Save(ledger *models.Ledger) error

	// Update runs one load-mutate-save cycle. Cycles within this process
	// are serialized; across processes the last writer wins for the
	// duration of the cycle, which is an accepted limitation of the
	// whole-document store.
	Update(mutate func(*models.Ledger) error) error

	// Close releases any resources held by the store, such as file locks.
	Close() error
}
