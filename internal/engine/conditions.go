package engine

import (
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// EvaluateCondition reports whether a single visibility condition holds
// against the answers gathered so far. Absent answers never satisfy a
// condition; unknown operators and shape mismatches fail closed.
func EvaluateCondition(cond domain.ConditionalShow, answers *domain.AnswerMap) bool {
	answer, ok := answers.Get(cond.Field)
	if !ok || answer.IsZero() {
		return false
	}
	switch cond.Operator {
	case domain.OpEquals:
		return answer.Equal(cond.Value)
	case domain.OpNotEquals:
		return !answer.Equal(cond.Value)
	case domain.OpGreaterThan, domain.OpLessThan, domain.OpGreaterOrEqual, domain.OpLessOrEqual:
		return compareNumeric(answer, cond.Operator, cond.Value)
	case domain.OpIncludes:
		has, ok := listMembership(answer, cond.Value)
		return ok && has
	case domain.OpExcludes:
		has, ok := listMembership(answer, cond.Value)
		return ok && !has
	case domain.OpContains:
		return strings.Contains(answer.Text(), cond.Value.Text())
	default:
		return false
	}
}

// ShouldShow applies a question's conditional-show rules conjunctively.
// Questions without conditions always show.
func ShouldShow(q domain.Question, answers *domain.AnswerMap) bool {
	for _, cond := range q.ConditionalShows {
		if !EvaluateCondition(cond, answers) {
			return false
		}
	}
	return true
}

func compareNumeric(answer domain.AnswerValue, op domain.ConditionOperator, operand domain.AnswerValue) bool {
	a, ok := answer.Number()
	if !ok {
		return false
	}
	b, ok := operand.Number()
	if !ok {
		return false
	}
	switch op {
	case domain.OpGreaterThan:
		return a > b
	case domain.OpLessThan:
		return a < b
	case domain.OpGreaterOrEqual:
		return a >= b
	case domain.OpLessOrEqual:
		return a <= b
	default:
		return false
	}
}

// listMembership tests whether the scalar operand occurs in the list
// answer. ok is false when the answer is not a list or the operand is not
// a scalar, so both includes and excludes fail closed on mismatched shapes.
func listMembership(answer, operand domain.AnswerValue) (has, ok bool) {
	items, isList := answer.List()
	if !isList || operand.IsZero() || operand.Kind() == domain.KindList {
		return false, false
	}
	want := operand.Text()
	for _, it := range items {
		if it == want {
			return true, true
		}
	}
	return false, true
}
