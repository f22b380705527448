package cmd

import (
	"tomatolog/internal/config"
	"tomatolog/internal/extract"
	"tomatolog/internal/reconcile"
	"tomatolog/internal/timeparse"
	"tomatolog/store"
)

// newLedgerStore opens the configured ledger store.
func newLedgerStore() (*store.FileLedgerStore, error) {
	return store.NewFileLedgerStore(GlobalAppConfig.Data.File, config.LockTimeout(&GlobalAppConfig))
}

// newReconciler wires the reconciler over the store and the natural
// language time resolver.
func newReconciler(st store.LedgerStore) *reconcile.Reconciler {
	return reconcile.New(st, timeparse.NewNaturalResolver())
}

// newExtractor builds the LLM extraction client from the loaded config.
func newExtractor() (*extract.Service, error) {
	return extract.NewService(config.ExtractConfig(&GlobalAppConfig))
}
