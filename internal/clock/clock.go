// Package clock supplies the fixed-zone time service for the activity ledger.
// All persisted timestamps are minute-precision instants in UTC+8, rendered
// as YYYY-MM-DDTHH:MM±HH:MM so the ledger file stays byte-compatible with the
// companion tooling that shares it.
package clock

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for ledger timestamps: minute precision with an
// explicit UTC offset and no seconds.
const Layout = "2006-01-02T15:04Z07:00"

// Beijing is the fixed civil zone for all ledger timestamps (UTC+8, no DST).
var Beijing = time.FixedZone("CST", 8*60*60)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Now returns the current instant expressed in the fixed zone.
func Now() time.Time {
	return nowFunc().In(Beijing)
}

// Normalize truncates t to minute precision and rezones it to the fixed
// +08:00 offset.
func Normalize(t time.Time) time.Time {
	t = t.In(Beijing)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, Beijing)
}

// Format renders Normalize(t) in the wire format.
func Format(t time.Time) string {
	return Normalize(t).Format(Layout)
}

// Parse reads a wire-format timestamp back into an instant in the fixed
// zone. Timestamps carrying seconds (written by older companion builds) are
// accepted and truncated.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return t.In(Beijing), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Normalize(t), nil
}

// Timestamp is a minute-precision, offset-aware instant as persisted in the
// ledger. The zero value marshals as the zero instant; the ledger never
// stores zero timestamps in practice.
type Timestamp struct {
	time.Time
}

// At normalizes t into a ledger Timestamp.
func At(t time.Time) Timestamp {
	return Timestamp{Normalize(t)}
}

func (ts Timestamp) String() string {
	return ts.In(Beijing).Format(Layout)
}

// MarshalJSON renders the timestamp in the wire format.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts the wire format.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := Parse(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
