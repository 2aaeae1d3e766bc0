package engine

import (
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// SkipResult reports whether a skip-logic rule fired and where the
// interview jumps next.
type SkipResult struct {
	ShouldSkip     bool   `json:"shouldSkip"`
	NextQuestionID string `json:"nextQuestionId,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// EvaluateSkip checks the question's skip rules against every answer
// recorded so far, in submission order. Rules are tried in library order
// and the first match wins. Rules whose target is missing from the pool
// are passed over rather than firing into nowhere.
func EvaluateSkip(q domain.Question, answers *domain.AnswerMap, pool []domain.Question) SkipResult {
	if len(q.SkipLogic) == 0 || answers.Len() == 0 {
		return SkipResult{}
	}
	for _, rule := range q.SkipLogic {
		if !questionInPool(pool, rule.NextQuestionID) {
			continue
		}
		for _, field := range answers.Fields() {
			prior, _ := answers.Get(field)
			if skipMatches(prior, rule.AnswerValue) {
				return SkipResult{
					ShouldSkip:     true,
					NextQuestionID: rule.NextQuestionID,
					Reason:         rule.Reason,
				}
			}
		}
	}
	return SkipResult{}
}

// skipMatches implements the forgiving equality used by skip rules.
// When either side is a list the test reduces to a non-empty intersection
// over string forms. Scalars compare exactly first, then case-insensitively
// on their string forms, so "CLEAN WATER" still matches "clean water".
func skipMatches(prior, want domain.AnswerValue) bool {
	priorItems, priorIsList := prior.List()
	wantItems, wantIsList := want.List()
	if priorIsList || wantIsList {
		if !priorIsList {
			priorItems = []string{prior.Text()}
		}
		if !wantIsList {
			wantItems = []string{want.Text()}
		}
		for _, p := range priorItems {
			for _, w := range wantItems {
				if p == w {
					return true
				}
			}
		}
		return false
	}
	if prior.Equal(want) {
		return true
	}
	return strings.EqualFold(prior.Text(), want.Text())
}

func questionInPool(pool []domain.Question, id string) bool {
	for _, q := range pool {
		if q.ID == id {
			return true
		}
	}
	return false
}
