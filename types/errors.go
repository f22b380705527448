package types

import (
	"errors"
	"fmt"
)

// ErrLockTimeout is returned when the cross-process ledger lock could not be
// acquired within the configured wait. Callers may retry the whole
// load-reconcile-save cycle; the store never retries internally.
var ErrLockTimeout = errors.New("timed out waiting for ledger lock")

// ValidationError reports a candidate record missing or malformed required
// fields. It is surfaced immediately, never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid activity record: %s", e.Reason)
}

// ResolutionError reports a start-time expression the resolver could not map
// to an absolute instant. The original expression is kept for diagnostics.
type ResolutionError struct {
	Expression string
	Err        error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve start time expression %q: %v", e.Expression, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// StoreError reports an I/O or decode failure in the ledger store. Fatal for
// the current operation.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
