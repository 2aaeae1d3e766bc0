package engine

import (
	"math"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

const (
	hesitantFactor    = 0.7
	transformerFactor = 0.9
)

// FieldConfidence computes the effective confidence for populating a
// mapped field from the given answer. Hesitant answers and transformer
// derivations compound multiplicatively on the mapping's base score;
// rounding happens once on the final product.
func FieldConfidence(answer domain.AnswerValue, mapping domain.FieldMapping) int {
	score := float64(mapping.Confidence)
	if hesitant(answer) {
		score *= hesitantFactor
	}
	if mapping.Derived() {
		score *= transformerFactor
	}
	return int(math.Round(score))
}

func hesitant(answer domain.AnswerValue) bool {
	text := answer.Text()
	return strings.EqualFold(text, "unsure") || strings.EqualFold(text, "maybe")
}
