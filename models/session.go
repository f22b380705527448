package models

import "tomatolog/internal/clock"

// ModeCountup marks a session recorded after the fact, as opposed to a timed
// countdown run by the clock UI.
const ModeCountup = "countup"

// Session represents one completed timed activity instance. Sessions are
// append-only: the logging path creates them and never mutates or deletes
// them afterwards.
type Session struct {
	ID int64 `json:"id"`
	// TaskID is nil only when the candidate record carried no activity
	// name, which leaves the session unlinked ("free timing").
	TaskID        *int64          `json:"task_id"`
	Mode          string          `json:"mode"`
	TargetSeconds int             `json:"target_seconds"`
	StartedAt     clock.Timestamp `json:"started_at"`
	EndedAt       clock.Timestamp `json:"ended_at"`
	Interrupted   bool            `json:"interrupted"`
	// DurationSec is the actual elapsed seconds recomputed from the
	// minute-truncated start/end pair, not a copy of TargetSeconds.
	DurationSec int `json:"duration_sec"`
}
