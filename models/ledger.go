package models

// Ledger is the single persisted document holding all tasks, sessions and id
// counters. It is rewritten wholesale on every logging operation; both
// counters are monotonic and never reused.
type Ledger struct {
	NextTaskID    int64     `json:"next_task_id"`
	NextSessionID int64     `json:"next_session_id"`
	Tasks         []Task    `json:"tasks"`
	Sessions      []Session `json:"sessions"`
}

// NewLedger returns the bootstrap state used when no ledger file exists yet.
func NewLedger() *Ledger {
	return &Ledger{
		NextTaskID:    1,
		NextSessionID: 1,
		Tasks:         []Task{},
		Sessions:      []Session{},
	}
}

// FindTaskByTitle returns the first task in sequence order whose title
// equals the given name exactly, or nil. Duplicate titles created by
// companion tooling are never merged; the first one is canonical.
func (l *Ledger) FindTaskByTitle(title string) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].Title == title {
			return &l.Tasks[i]
		}
	}
	return nil
}

// TaskByID returns the task with the given id, or nil.
func (l *Ledger) TaskByID(id int64) *Task {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return &l.Tasks[i]
		}
	}
	return nil
}

// AllocateTaskID hands out the next task id and advances the counter.
func (l *Ledger) AllocateTaskID() int64 {
	id := l.NextTaskID
	l.NextTaskID++
	return id
}

// AllocateSessionID hands out the next session id and advances the counter.
func (l *Ledger) AllocateSessionID() int64 {
	id := l.NextSessionID
	l.NextSessionID++
	return id
}
