package models

// Candidate is the structured activity record produced by the extraction
// step. It is weakly trusted: the extraction boundary validates it with
// ValidateStruct before it reaches the reconciler.
type Candidate struct {
	// ActivityName is a noun naming the activity, at least two characters
	// of meaningful content.
	ActivityName string `json:"activity_name" validate:"required,min=2"`
	// StartTime is either an absolute ISO8601 timestamp or a natural
	// language expression resolved against the current time.
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	// Label is optional; the reconciler falls back to DefaultLabel.
	Label string `json:"label,omitempty"`
}

// LabelOrDefault returns the candidate's label, defaulting unclassified
// records.
func (c Candidate) LabelOrDefault() string {
	if c.Label == "" {
		return DefaultLabel
	}
	return c.Label
}
