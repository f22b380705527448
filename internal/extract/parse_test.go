package extract

import (
	"errors"
	"testing"

	"tomatolog/types"
)

const validRecord = `{"activity_name": "锻炼", "start_time": "2025-07-23T12:00+08:00", "duration_minutes": 30, "label": "健康"}`

func TestParseCandidatePlainJSON(t *testing.T) {
	c, err := ParseCandidate(validRecord)
	if err != nil {
		t.Fatalf("ParseCandidate failed: %v", err)
	}
	if c.ActivityName != "锻炼" || c.DurationMinutes != 30 || c.Label != "健康" {
		t.Errorf("unexpected candidate: %+v", c)
	}
}

func TestParseCandidateFencedJSON(t *testing.T) {
	cases := map[string]string{
		"json fence":  "```json\n" + validRecord + "\n```",
		"bare fence":  "```\n" + validRecord + "\n```",
		"whitespace":  "  \n" + validRecord + "\n  ",
		"inner space": "```json\n  " + validRecord + "  \n```",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := ParseCandidate(input)
			if err != nil {
				t.Fatalf("ParseCandidate failed: %v", err)
			}
			if c.ActivityName != "锻炼" {
				t.Errorf("unexpected candidate: %+v", c)
			}
		})
	}
}

func TestParseCandidateRejectsNonJSON(t *testing.T) {
	_, err := ParseCandidate("好的，我已经帮你记录了。")
	var vErr *types.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestParseCandidateRejectsInvalidFields(t *testing.T) {
	cases := map[string]string{
		"short name":        `{"activity_name": "学", "start_time": "2025-07-23T12:00+08:00", "duration_minutes": 30}`,
		"missing name":      `{"start_time": "2025-07-23T12:00+08:00", "duration_minutes": 30}`,
		"missing start":     `{"activity_name": "锻炼", "duration_minutes": 30}`,
		"zero duration":     `{"activity_name": "锻炼", "start_time": "2025-07-23T12:00+08:00", "duration_minutes": 0}`,
		"negative duration": `{"activity_name": "锻炼", "start_time": "2025-07-23T12:00+08:00", "duration_minutes": -5}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseCandidate(input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseCandidateLabelOptional(t *testing.T) {
	c, err := ParseCandidate(`{"activity_name": "锻炼", "start_time": "中午12点", "duration_minutes": 30}`)
	if err != nil {
		t.Fatalf("ParseCandidate failed: %v", err)
	}
	if c.Label != "" || c.LabelOrDefault() != "自由任务" {
		t.Errorf("label handling wrong: %q / %q", c.Label, c.LabelOrDefault())
	}
}
