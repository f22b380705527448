package reconcile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tomatolog/internal/clock"
	"tomatolog/models"
	"tomatolog/store"
	"tomatolog/types"
)

// wireResolver resolves only absolute wire-format timestamps. Reconciler
// tests do not exercise natural language parsing.
type wireResolver struct{}

func (wireResolver) Resolve(expr string, _ time.Time) (time.Time, error) {
	return clock.Parse(expr)
}

// failResolver rejects every expression.
type failResolver struct{}

func (failResolver) Resolve(expr string, _ time.Time) (time.Time, error) {
	return time.Time{}, fmt.Errorf("no interpretation for %q", expr)
}

var testNow = time.Date(2025, 7, 23, 14, 5, 0, 0, clock.Beijing)

func setupReconciler(t *testing.T) (*Reconciler, *store.FileLedgerStore) {
	t.Helper()

	st, err := store.NewFileLedgerStore(filepath.Join(t.TempDir(), ".tomato_clock.json"), time.Second)
	if err != nil {
		t.Fatalf("NewFileLedgerStore failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	r := New(st, wireResolver{})
	r.now = func() time.Time { return testNow }
	return r, st
}

func exerciseCandidate() models.Candidate {
	return models.Candidate{
		ActivityName:    "锻炼",
		StartTime:       "2025-07-23T12:00+08:00",
		DurationMinutes: 30,
		Label:           "健康",
	}
}

func TestReconcileScenario(t *testing.T) {
	r, _ := setupReconciler(t)
	ledger := models.NewLedger()

	receipt, err := r.Reconcile(exerciseCandidate(), ledger)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if len(ledger.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(ledger.Tasks))
	}
	task := ledger.Tasks[0]
	if task.ID != 1 || task.Title != "锻炼" || task.Label != "健康" {
		t.Errorf("unexpected task: %+v", task)
	}
	if task.IsDone || task.RepeatRule != models.RepeatNone || task.Note != "" {
		t.Errorf("task creation defaults wrong: %+v", task)
	}
	// New task timestamps come from the reference clock, not the
	// session's start instant.
	if task.CreatedAt.String() != "2025-07-23T14:05+08:00" {
		t.Errorf("created_at = %s, want reference instant", task.CreatedAt)
	}

	if len(ledger.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(ledger.Sessions))
	}
	sess := ledger.Sessions[0]
	if sess.ID != 1 || sess.TaskID == nil || *sess.TaskID != 1 {
		t.Errorf("unexpected session linkage: %+v", sess)
	}
	if sess.Mode != models.ModeCountup || sess.Interrupted {
		t.Errorf("unexpected session defaults: %+v", sess)
	}
	if sess.StartedAt.String() != "2025-07-23T12:00+08:00" || sess.EndedAt.String() != "2025-07-23T12:30+08:00" {
		t.Errorf("session window = %s -> %s", sess.StartedAt, sess.EndedAt)
	}
	if sess.TargetSeconds != 1800 || sess.DurationSec != 1800 {
		t.Errorf("durations = target %d actual %d, want 1800/1800", sess.TargetSeconds, sess.DurationSec)
	}

	if ledger.NextTaskID != 2 || ledger.NextSessionID != 2 {
		t.Errorf("counters = %d/%d, want 2/2", ledger.NextTaskID, ledger.NextSessionID)
	}
	if receipt.SessionID != 1 || receipt.ActivityName != "锻炼" {
		t.Errorf("unexpected receipt: %+v", receipt)
	}
}

func TestReconcileReusesTaskByExactTitle(t *testing.T) {
	r, _ := setupReconciler(t)
	ledger := models.NewLedger()

	first := exerciseCandidate()
	second := exerciseCandidate()
	second.StartTime = "2025-07-23T13:00+08:00"
	second.Label = "运动" // reuse must not touch the existing task

	if _, err := r.Reconcile(first, ledger); err != nil {
		t.Fatalf("first Reconcile failed: %v", err)
	}
	originalUpdatedAt := ledger.Tasks[0].UpdatedAt
	if _, err := r.Reconcile(second, ledger); err != nil {
		t.Fatalf("second Reconcile failed: %v", err)
	}

	if len(ledger.Tasks) != 1 {
		t.Fatalf("expected exactly one task after reuse, got %d", len(ledger.Tasks))
	}
	if ledger.Tasks[0].Label != "健康" || ledger.Tasks[0].UpdatedAt != originalUpdatedAt {
		t.Errorf("reuse mutated the existing task: %+v", ledger.Tasks[0])
	}
	if len(ledger.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(ledger.Sessions))
	}
	for _, s := range ledger.Sessions {
		if s.TaskID == nil || *s.TaskID != 1 {
			t.Errorf("session %d not linked to task 1: %v", s.ID, s.TaskID)
		}
	}
	if ledger.NextTaskID != 2 || ledger.NextSessionID != 3 {
		t.Errorf("counters = %d/%d, want 2/3", ledger.NextTaskID, ledger.NextSessionID)
	}
}

func TestReconcileFirstMatchingTitleIsCanonical(t *testing.T) {
	r, _ := setupReconciler(t)
	ledger := models.NewLedger()

	// Duplicate titles created out-of-band are never merged; the first in
	// sequence order wins.
	created := clock.At(testNow)
	ledger.Tasks = []models.Task{
		{ID: 7, Title: "学习", CreatedAt: created, UpdatedAt: created, Label: "学习"},
		{ID: 9, Title: "学习", CreatedAt: created, UpdatedAt: created, Label: "工作"},
	}
	ledger.NextTaskID = 10

	c := exerciseCandidate()
	c.ActivityName = "学习"
	receipt, err := r.Reconcile(c, ledger)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if receipt.TaskID == nil || *receipt.TaskID != 7 {
		t.Errorf("expected first task (id 7) reused, got %v", receipt.TaskID)
	}
	if len(ledger.Tasks) != 2 || ledger.NextTaskID != 10 {
		t.Errorf("reuse must not allocate a task id")
	}
}

func TestReconcileEmptyActivityName(t *testing.T) {
	r, _ := setupReconciler(t)
	ledger := models.NewLedger()

	c := exerciseCandidate()
	c.ActivityName = ""
	receipt, err := r.Reconcile(c, ledger)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(ledger.Tasks) != 0 {
		t.Errorf("empty name must not create a task: %+v", ledger.Tasks)
	}
	if receipt.TaskID != nil {
		t.Errorf("expected nil task id, got %v", *receipt.TaskID)
	}
	if len(ledger.Sessions) != 1 || ledger.Sessions[0].TaskID != nil {
		t.Errorf("expected one unlinked session: %+v", ledger.Sessions)
	}
	if ledger.NextTaskID != 1 {
		t.Errorf("task counter moved without a task: %d", ledger.NextTaskID)
	}
}

func TestReconcileDefaultsLabel(t *testing.T) {
	r, _ := setupReconciler(t)
	ledger := models.NewLedger()

	c := exerciseCandidate()
	c.Label = ""
	if _, err := r.Reconcile(c, ledger); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if ledger.Tasks[0].Label != models.DefaultLabel {
		t.Errorf("label = %q, want %q", ledger.Tasks[0].Label, models.DefaultLabel)
	}
}

func TestReconcileMissingStartTime(t *testing.T) {
	r, _ := setupReconciler(t)

	c := exerciseCandidate()
	c.StartTime = "   "
	_, err := r.Reconcile(c, models.NewLedger())
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestReconcileNonPositiveDuration(t *testing.T) {
	r, _ := setupReconciler(t)

	c := exerciseCandidate()
	c.DurationMinutes = 0
	_, err := r.Reconcile(c, models.NewLedger())
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestReconcileResolutionErrorKeepsExpression(t *testing.T) {
	r, _ := setupReconciler(t)
	r.resolver = failResolver{}

	c := exerciseCandidate()
	c.StartTime = "下周某个时候"
	_, err := r.Reconcile(c, models.NewLedger())
	var rErr *types.ResolutionError
	if !errors.As(err, &rErr) {
		t.Fatalf("expected ResolutionError, got %T: %v", err, err)
	}
	if rErr.Expression != "下周某个时候" {
		t.Errorf("expression = %q, want original", rErr.Expression)
	}
}

func TestLogActivitySuccessText(t *testing.T) {
	r, st := setupReconciler(t)

	reply := r.LogActivity(exerciseCandidate())
	if !strings.Contains(reply, "锻炼") || !strings.Contains(reply, "计时ID: 1") {
		t.Errorf("unexpected reply: %q", reply)
	}

	ledger, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ledger.Sessions) != 1 {
		t.Errorf("session was not persisted")
	}
}

func TestLogActivityFailureText(t *testing.T) {
	r, st := setupReconciler(t)

	c := exerciseCandidate()
	c.StartTime = ""
	reply := r.LogActivity(c)
	if !strings.HasPrefix(reply, "记录失败: ") {
		t.Errorf("failure reply not marked: %q", reply)
	}

	ledger, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ledger.Sessions) != 0 || len(ledger.Tasks) != 0 {
		t.Errorf("failed logging must leave the ledger unchanged")
	}
}

func TestCounterMonotonicity(t *testing.T) {
	r, st := setupReconciler(t)

	names := []string{"锻炼", "学习", "锻炼", "吃饭", "学习"}
	for i, name := range names {
		c := exerciseCandidate()
		c.ActivityName = name
		if reply := r.LogActivity(c); strings.HasPrefix(reply, "记录失败") {
			t.Fatalf("cycle %d failed: %s", i, reply)
		}
	}

	ledger, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Three distinct titles, five cycles.
	if ledger.NextTaskID != 4 {
		t.Errorf("next_task_id = %d, want 4", ledger.NextTaskID)
	}
	if ledger.NextSessionID != 6 {
		t.Errorf("next_session_id = %d, want 6", ledger.NextSessionID)
	}
}
