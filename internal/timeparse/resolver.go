// Package timeparse resolves free-text start-time expressions into absolute
// instants. Expressions may be absolute ISO8601 timestamps or natural
// language, Chinese or English, resolved against a reference time.
package timeparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"tomatolog/internal/clock"
)

// NaturalResolver resolves expressions with dateparser, biased towards past
// interpretations so an ambiguous bare hour maps to its most recent past
// occurrence rather than a future one.
type NaturalResolver struct {
	languages []string
}

// NewNaturalResolver returns a resolver for Chinese and English expressions.
func NewNaturalResolver() *NaturalResolver {
	return &NaturalResolver{languages: []string{"zh", "en"}}
}

// Resolve maps expr, relative to base, to an absolute instant in the fixed
// ledger zone.
func (r *NaturalResolver) Resolve(expr string, base time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}

	// Absolute wire-format timestamps bypass the natural language parser;
	// the extraction prompt asks the model for exactly this shape.
	if t, err := clock.Parse(expr); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:         base,
		DefaultTimezone:     clock.Beijing,
		PreferredDateSource: dateparser.Past,
		Languages:           r.languages,
	}
	parsed, err := dateparser.Parse(cfg, normalizeClock(expr))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", expr, err)
	}
	if parsed.Time.IsZero() {
		return time.Time{}, fmt.Errorf("no interpretation for %q", expr)
	}
	t := parsed.Time.In(clock.Beijing)
	// A bare clock time after the reference instant means its most recent
	// past occurrence, the previous day.
	if t.After(base) && !datedExpr.MatchString(expr) {
		t = t.AddDate(0, 0, -1)
	}
	return t, nil
}
