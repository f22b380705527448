// Package reconcile turns validated activity records into ledger mutations:
// it deduplicates tasks by exact title, computes the session's absolute
// start/end/duration, and appends the session to the ledger.
package reconcile

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tomatolog/internal/clock"
	"tomatolog/models"
	"tomatolog/store"
	"tomatolog/types"
)

// Resolver maps a free-text start-time expression, relative to a reference
// instant, to an absolute instant.
type Resolver interface {
	Resolve(expr string, base time.Time) (time.Time, error)
}

// Receipt describes one successfully logged activity.
type Receipt struct {
	ActivityName string
	SessionID    int64
	// TaskID is nil when the candidate carried no activity name.
	TaskID    *int64
	StartedAt clock.Timestamp
	EndedAt   clock.Timestamp
}

// Reconciler applies candidate records to the ledger.
type Reconciler struct {
	store    store.LedgerStore
	resolver Resolver

	// now is the reference clock, overridable in tests.
	now func() time.Time
}

// New creates a Reconciler over the given store and resolver.
func New(st store.LedgerStore, resolver Resolver) *Reconciler {
	return &Reconciler{
		store:    st,
		resolver: resolver,
		now:      clock.Now,
	}
}

// Reconcile applies one candidate record to the given ledger in place and
// returns a receipt. It propagates typed errors; callers wanting the
// text-only tool behavior use LogActivity instead.
//
// The existing task is never touched on reuse: no updated_at bump. A new
// task's timestamps are the current reference instant, not the session's
// start instant.
func (r *Reconciler) Reconcile(c models.Candidate, ledger *models.Ledger) (*Receipt, error) {
	if strings.TrimSpace(c.StartTime) == "" {
		return nil, &types.ValidationError{Reason: "missing start time"}
	}
	if c.DurationMinutes <= 0 {
		return nil, &types.ValidationError{Reason: "duration must be a positive number of minutes"}
	}

	base := r.now()
	start, err := r.resolver.Resolve(c.StartTime, base)
	if err != nil {
		return nil, &types.ResolutionError{Expression: c.StartTime, Err: err}
	}
	start = clock.Normalize(start)
	end := start.Add(time.Duration(c.DurationMinutes) * time.Minute)
	durationSec := int(end.Sub(start).Seconds())

	var taskID *int64
	if c.ActivityName != "" {
		if existing := ledger.FindTaskByTitle(c.ActivityName); existing != nil {
			id := existing.ID
			taskID = &id
		} else {
			id := ledger.AllocateTaskID()
			created := clock.At(base)
			ledger.Tasks = append(ledger.Tasks, models.Task{
				ID:         id,
				Title:      c.ActivityName,
				RepeatRule: models.RepeatNone,
				CreatedAt:  created,
				UpdatedAt:  created,
				Label:      c.LabelOrDefault(),
			})
			taskID = &id
		}
	}

	sessionID := ledger.AllocateSessionID()
	startedAt := clock.At(start)
	endedAt := clock.At(end)
	ledger.Sessions = append(ledger.Sessions, models.Session{
		ID:            sessionID,
		TaskID:        taskID,
		Mode:          models.ModeCountup,
		TargetSeconds: c.DurationMinutes * 60,
		StartedAt:     startedAt,
		EndedAt:       endedAt,
		Interrupted:   false,
		DurationSec:   durationSec,
	})

	return &Receipt{
		ActivityName: c.ActivityName,
		SessionID:    sessionID,
		TaskID:       taskID,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
	}, nil
}

// LogActivity runs the full load-reconcile-save cycle and reports the
// outcome as plain text. The extraction pipeline expects a text reply, so
// this boundary folds every failure, including panics, into the reply and
// never propagates; it is the only place errors are swallowed.
func (r *Reconciler) LogActivity(c models.Candidate) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("activity logging panicked", "activity", c.ActivityName, "panic", rec)
			reply = fmt.Sprintf("记录失败: %v", rec)
		}
	}()

	var receipt *Receipt
	err := r.store.Update(func(ledger *models.Ledger) error {
		var err error
		receipt, err = r.Reconcile(c, ledger)
		return err
	})
	if err != nil {
		slog.Warn("activity logging failed", "activity", c.ActivityName, "error", err)
		return fmt.Sprintf("记录失败: %v", err)
	}

	slog.Info("activity logged",
		"activity", c.ActivityName,
		"session_id", receipt.SessionID,
		"started_at", receipt.StartedAt.String(),
		"ended_at", receipt.EndedAt.String(),
	)
	return fmt.Sprintf("活动 '%s' 已成功记录。计时ID: %d", c.ActivityName, receipt.SessionID)
}
