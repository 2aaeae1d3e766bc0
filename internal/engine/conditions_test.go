package engine

import (
	"testing"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

func TestShouldShowRequiresEveryCondition(t *testing.T) {
	q := domain.Question{
		ID: "contamination_spread",
		ConditionalShows: []domain.ConditionalShow{
			{Field: "water_source", Operator: domain.OpEquals, Value: domain.StringAnswer("black_water")},
			{Field: "affected_area_percentage", Operator: domain.OpGreaterThan, Value: domain.NumberAnswer(30)},
		},
	}

	answers := domain.NewAnswerMap()
	if ShouldShow(q, answers) {
		t.Fatalf("no answers recorded, question must stay hidden")
	}

	answers.Set("water_source", domain.StringAnswer("black_water"))
	if ShouldShow(q, answers) {
		t.Fatalf("one of two conditions met, question must stay hidden")
	}

	answers.Set("affected_area_percentage", domain.NumberAnswer(45))
	if !ShouldShow(q, answers) {
		t.Fatalf("both conditions met, question must show")
	}

	answers.Set("affected_area_percentage", domain.NumberAnswer(30))
	if ShouldShow(q, answers) {
		t.Fatalf("gt is strict, 30 must not satisfy gt 30")
	}
}

func TestShouldShowWithoutConditions(t *testing.T) {
	if !ShouldShow(domain.Question{ID: "plain"}, domain.NewAnswerMap()) {
		t.Fatalf("unconditional questions always show")
	}
}

func TestEvaluateConditionAbsentAnswer(t *testing.T) {
	cond := domain.ConditionalShow{Field: "missing", Operator: domain.OpNotEquals, Value: domain.StringAnswer("x")}
	if EvaluateCondition(cond, domain.NewAnswerMap()) {
		t.Fatalf("absent answers never satisfy a condition, even neq")
	}
}

func TestEvaluateConditionNumericCoercion(t *testing.T) {
	answers := domain.NewAnswerMap()
	answers.Set("affected_area_percentage", domain.StringAnswer("45"))

	cond := domain.ConditionalShow{Field: "affected_area_percentage", Operator: domain.OpGreaterThan, Value: domain.NumberAnswer(30)}
	if !EvaluateCondition(cond, answers) {
		t.Fatalf("numeric strings coerce for ordered comparisons")
	}

	answers.Set("affected_area_percentage", domain.StringAnswer("quite a lot"))
	if EvaluateCondition(cond, answers) {
		t.Fatalf("failed coercion must evaluate false")
	}

	cond.Operator = domain.OpLessOrEqual
	answers.Set("affected_area_percentage", domain.NumberAnswer(30))
	if !EvaluateCondition(cond, answers) {
		t.Fatalf("lte accepts equality")
	}
}

func TestEvaluateConditionMembership(t *testing.T) {
	answers := domain.NewAnswerMap()
	answers.Set("materials_affected", domain.ListAnswer("drywall", "carpet"))

	inc := domain.ConditionalShow{Field: "materials_affected", Operator: domain.OpIncludes, Value: domain.StringAnswer("carpet")}
	if !EvaluateCondition(inc, answers) {
		t.Fatalf("includes should find carpet")
	}

	exc := domain.ConditionalShow{Field: "materials_affected", Operator: domain.OpExcludes, Value: domain.StringAnswer("tile")}
	if !EvaluateCondition(exc, answers) {
		t.Fatalf("excludes should hold for absent element")
	}

	answers.Set("materials_affected", domain.StringAnswer("drywall"))
	if EvaluateCondition(inc, answers) {
		t.Fatalf("includes requires a list answer")
	}
	if EvaluateCondition(exc, answers) {
		t.Fatalf("excludes requires a list answer and fails closed")
	}
}

func TestEvaluateConditionContains(t *testing.T) {
	answers := domain.NewAnswerMap()
	answers.Set("site_access_notes", domain.StringAnswer("rear lane access; bedroom ceiling collapsed"))

	cond := domain.ConditionalShow{Field: "site_access_notes", Operator: domain.OpContains, Value: domain.StringAnswer("bedroom")}
	if !EvaluateCondition(cond, answers) {
		t.Fatalf("contains should match substring")
	}

	answers.Set("site_access_notes", domain.NumberAnswer(12.5))
	cond.Value = domain.StringAnswer("2.5")
	if !EvaluateCondition(cond, answers) {
		t.Fatalf("contains works on the string form of numbers")
	}
}

func TestEvaluateConditionUnknownOperator(t *testing.T) {
	answers := domain.NewAnswerMap()
	answers.Set("water_source", domain.StringAnswer("black_water"))
	cond := domain.ConditionalShow{Field: "water_source", Operator: "matches", Value: domain.StringAnswer("black_water")}
	if EvaluateCondition(cond, answers) {
		t.Fatalf("unknown operators fail closed")
	}
}

func TestEvaluateConditionNotEquals(t *testing.T) {
	answers := domain.NewAnswerMap()
	answers.Set("water_source", domain.StringAnswer("grey_water"))
	cond := domain.ConditionalShow{Field: "water_source", Operator: domain.OpNotEquals, Value: domain.StringAnswer("clean_water")}
	if !EvaluateCondition(cond, answers) {
		t.Fatalf("neq should hold for differing values")
	}
	answers.Set("water_source", domain.StringAnswer("clean_water"))
	if EvaluateCondition(cond, answers) {
		t.Fatalf("neq should fail for equal values")
	}
}
