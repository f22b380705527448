package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tomatolog/internal/clock"
)

// DefaultLabel classifies activities the extraction step could not label.
const DefaultLabel = "自由任务"

// RepeatNone is the only repeat rule the logging path produces.
const RepeatNone = "none"

// Task represents a named recurring activity. The title is the natural key:
// the reconciler reuses the first task whose title matches a candidate's
// activity name exactly, with no normalization.
type Task struct {
	ID         int64           `json:"id" validate:"required,gt=0"`
	Title      string          `json:"title" validate:"required"`
	Note       string          `json:"note"`
	IsDone     bool            `json:"is_done"`
	RepeatRule string          `json:"repeat_rule"`
	CreatedAt  clock.Timestamp `json:"created_at"`
	UpdatedAt  clock.Timestamp `json:"updated_at"`
	Label      string          `json:"label"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
