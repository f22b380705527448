package extract

import (
	"encoding/json"
	"strings"

	"tomatolog/models"
	"tomatolog/types"
)

// stripFences removes a Markdown code fence wrapping the model output, with
// or without a "json" language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.Trim(s, "`")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}

// ParseCandidate decodes the model output into a strict typed record. This
// is the fail-fast edge: any shape or field the validator rejects never
// reaches the reconciler.
func ParseCandidate(output string) (models.Candidate, error) {
	var c models.Candidate
	cleaned := stripFences(output)
	if err := json.Unmarshal([]byte(cleaned), &c); err != nil {
		return models.Candidate{}, &types.ValidationError{Reason: "model output is not a JSON activity record: " + err.Error()}
	}
	if err := models.ValidateStruct(c); err != nil {
		return models.Candidate{}, &types.ValidationError{Reason: err.Error()}
	}
	return c, nil
}
