package engine

import (
	"sort"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// TransformerFunc derives a form-field value from a raw answer. Returning
// the absent value means the derivation has nothing to offer and the
// mapping is skipped.
type TransformerFunc func(answer domain.AnswerValue, ctx domain.InterviewContext) domain.AnswerValue

// Registry resolves the transformer names referenced by library field
// mappings.
type Registry struct {
	funcs map[string]TransformerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]TransformerFunc)}
}

// Register binds a transformer name. Later registrations win.
func (r *Registry) Register(name string, fn TransformerFunc) {
	r.funcs[name] = fn
}

// Lookup resolves a transformer by name.
func (r *Registry) Lookup(name string) (TransformerFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered transformer names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Builtin returns a registry holding the shipped transformers.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register("water_category", waterCategory)
	r.Register("area_band", areaBand)
	r.Register("selection_count", selectionCount)
	r.Register("containment_scale", containmentScale)
	r.Register("affirmative_flag", affirmativeFlag)
	r.Register("applicable_standard", applicableStandard)
	r.Register("era_asbestos_risk", eraAsbestosRisk)
	return r
}

// waterCategory maps the water source onto its contamination category.
func waterCategory(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	switch strings.ToLower(answer.Text()) {
	case "clean_water":
		return domain.StringAnswer("category_1")
	case "grey_water":
		return domain.StringAnswer("category_2")
	case "black_water":
		return domain.StringAnswer("category_3")
	default:
		return domain.AnswerValue{}
	}
}

// areaBand buckets an affected-area percentage into an extent band.
func areaBand(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	pct, ok := answer.Number()
	if !ok {
		return domain.AnswerValue{}
	}
	switch {
	case pct < 10:
		return domain.StringAnswer("minor")
	case pct < 30:
		return domain.StringAnswer("moderate")
	case pct < 60:
		return domain.StringAnswer("major")
	default:
		return domain.StringAnswer("extensive")
	}
}

// selectionCount counts the entries of a multi-select answer.
func selectionCount(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	items, ok := answer.List()
	if !ok {
		return domain.AnswerValue{}
	}
	return domain.NumberAnswer(float64(len(items)))
}

// containmentScale maps the visible mould extent onto the containment
// level remediation planning starts from.
func containmentScale(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	switch answer.Text() {
	case "under_one_sqm":
		return domain.StringAnswer("none")
	case "one_to_ten_sqm":
		return domain.StringAnswer("local_containment")
	case "over_ten_sqm", "hidden_suspected":
		return domain.StringAnswer("full_containment")
	default:
		return domain.AnswerValue{}
	}
}

// affirmativeFlag normalizes yes/no style answers to a bool.
func affirmativeFlag(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	if b, ok := answer.Bool(); ok {
		return domain.BoolAnswer(b)
	}
	switch strings.ToLower(strings.TrimSpace(answer.Text())) {
	case "yes", "true", "y":
		return domain.BoolAnswer(true)
	case "no", "false", "n":
		return domain.BoolAnswer(false)
	default:
		return domain.AnswerValue{}
	}
}

// applicableStandard resolves the governing IICRC standard for the job.
func applicableStandard(_ domain.AnswerValue, ctx domain.InterviewContext) domain.AnswerValue {
	switch ctx.JobType {
	case domain.JobWaterDamage:
		return domain.StringAnswer("S500")
	case domain.JobMouldRemediation:
		return domain.StringAnswer("S520")
	case domain.JobFireSmoke:
		return domain.StringAnswer("S700")
	case domain.JobBiohazard:
		return domain.StringAnswer("S540")
	default:
		return domain.AnswerValue{}
	}
}

// eraAsbestosRisk grades asbestos likelihood from the construction era.
// Australian supply wound down through the 1980s and the outright ban
// landed in 2003.
func eraAsbestosRisk(answer domain.AnswerValue, _ domain.InterviewContext) domain.AnswerValue {
	switch answer.Text() {
	case "pre_1990":
		return domain.StringAnswer("high")
	case "1990_2003":
		return domain.StringAnswer("possible")
	case "post_2003":
		return domain.StringAnswer("unlikely")
	default:
		return domain.AnswerValue{}
	}
}
