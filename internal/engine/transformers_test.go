package engine

import (
	"testing"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

func TestBuiltinTransformers(t *testing.T) {
	reg := Builtin()
	ctx := domain.InterviewContext{JobType: domain.JobWaterDamage}

	water, ok := reg.Lookup("water_category")
	if !ok {
		t.Fatalf("water_category not registered")
	}
	if got := water(domain.StringAnswer("black_water"), ctx); got.Text() != "category_3" {
		t.Fatalf("water_category: %q", got.Text())
	}
	if got := water(domain.StringAnswer("spring water"), ctx); !got.IsZero() {
		t.Fatalf("unknown sources derive nothing")
	}

	band, _ := reg.Lookup("area_band")
	if got := band(domain.NumberAnswer(45), ctx); got.Text() != "major" {
		t.Fatalf("area_band 45: %q", got.Text())
	}
	if got := band(domain.StringAnswer("8"), ctx); got.Text() != "minor" {
		t.Fatalf("area_band coerces numeric strings: %q", got.Text())
	}
	if got := band(domain.ListAnswer("a"), ctx); !got.IsZero() {
		t.Fatalf("area_band rejects lists")
	}

	count, _ := reg.Lookup("selection_count")
	if got := count(domain.ListAnswer("drywall", "carpet", "subfloor"), ctx); got.Text() != "3" {
		t.Fatalf("selection_count: %q", got.Text())
	}

	scale, _ := reg.Lookup("containment_scale")
	if got := scale(domain.StringAnswer("over_ten_sqm"), ctx); got.Text() != "full_containment" {
		t.Fatalf("containment_scale: %q", got.Text())
	}

	flag, _ := reg.Lookup("affirmative_flag")
	if got, _ := flag(domain.StringAnswer("Yes"), ctx).Bool(); !got {
		t.Fatalf("affirmative_flag should normalize yes")
	}
	if got, _ := flag(domain.BoolAnswer(false), ctx).Bool(); got {
		t.Fatalf("affirmative_flag passes bools through")
	}

	std, _ := reg.Lookup("applicable_standard")
	if got := std(domain.AnswerValue{}, ctx); got.Text() != "S500" {
		t.Fatalf("applicable_standard for water: %q", got.Text())
	}
	if got := std(domain.AnswerValue{}, domain.InterviewContext{JobType: domain.JobMouldRemediation}); got.Text() != "S520" {
		t.Fatalf("applicable_standard for mould: %q", got.Text())
	}

	era, _ := reg.Lookup("era_asbestos_risk")
	if got := era(domain.StringAnswer("pre_1990"), ctx); got.Text() != "high" {
		t.Fatalf("era_asbestos_risk: %q", got.Text())
	}
}

func TestRegistryOverrides(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", func(domain.AnswerValue, domain.InterviewContext) domain.AnswerValue {
		return domain.StringAnswer("one")
	})
	reg.Register("custom", func(domain.AnswerValue, domain.InterviewContext) domain.AnswerValue {
		return domain.StringAnswer("two")
	})
	fn, ok := reg.Lookup("custom")
	if !ok {
		t.Fatalf("custom not registered")
	}
	if got := fn(domain.AnswerValue{}, domain.InterviewContext{}); got.Text() != "two" {
		t.Fatalf("later registration should win, got %q", got.Text())
	}
	if _, ok := reg.Lookup("absent"); ok {
		t.Fatalf("unknown names must miss")
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "custom" {
		t.Fatalf("names %v", names)
	}
}
