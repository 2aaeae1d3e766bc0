package engine

import (
	"fmt"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// ValidationResult carries every structural problem found on a question.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidateQuestion checks one library entry for structural completeness.
// All violations are collected; the check never stops at the first.
func ValidateQuestion(q domain.Question) ValidationResult {
	var errs []string
	if strings.TrimSpace(q.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, "text is required")
	}
	if q.Type == "" {
		errs = append(errs, "type is required")
	} else if !q.Type.Valid() {
		errs = append(errs, fmt.Sprintf("unknown question type %q", q.Type))
	}
	if len(q.StandardsReference) == 0 {
		errs = append(errs, "at least one standards reference is required")
	}
	if len(q.FieldMappings) == 0 {
		errs = append(errs, "at least one field mapping is required")
	}
	for i, m := range q.FieldMappings {
		if strings.TrimSpace(m.FormFieldID) == "" {
			errs = append(errs, fmt.Sprintf("fieldMappings[%d]: formFieldId is required", i))
		}
		if m.Confidence < 0 || m.Confidence > 100 {
			errs = append(errs, fmt.Sprintf("fieldMappings[%d]: confidence %d outside [0,100]", i, m.Confidence))
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
