package engine

import (
	"sort"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// Sequence bands for the priority tiers. Unsequenced questions always
// land in tier 4 and sort last.
const (
	tier1MaxSequence = 5
	tier2MaxSequence = 8
	tier3MaxSequence = 13

	unsequenced = 1 << 30

	secondsPerQuestion  = 25
	minInterviewMinutes = 5
	maxInterviewMinutes = 30
)

// TierFor returns the priority band (1-4) for a question.
func TierFor(q domain.Question) int {
	seq := q.SequenceNumber
	switch {
	case seq <= 0:
		return 4
	case seq <= tier1MaxSequence:
		return 1
	case seq <= tier2MaxSequence:
		return 2
	case seq <= tier3MaxSequence:
		return 3
	default:
		return 4
	}
}

// OrganizeTiers buckets questions into their priority bands.
func OrganizeTiers(questions []domain.Question) domain.TieredQuestions {
	var tiers domain.TieredQuestions
	for _, q := range questions {
		switch TierFor(q) {
		case 1:
			tiers.Tier1 = append(tiers.Tier1, q)
		case 2:
			tiers.Tier2 = append(tiers.Tier2, q)
		case 3:
			tiers.Tier3 = append(tiers.Tier3, q)
		default:
			tiers.Tier4 = append(tiers.Tier4, q)
		}
	}
	return tiers
}

// FilterEligible drops questions gated above the caller's subscription
// tier or tied to other job types. Questions with no job-type list apply
// to every job.
func FilterEligible(questions []domain.Question, ctx domain.InterviewContext) []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if !ctx.UserTier.Covers(q.MinTierLevel) {
			continue
		}
		if len(q.JobTypes) > 0 && !jobTypeListed(q.JobTypes, ctx.JobType) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func jobTypeListed(jobs []domain.JobType, job domain.JobType) bool {
	for _, j := range jobs {
		if j == job {
			return true
		}
	}
	return false
}

// SortByPriority orders a copy of the questions by sequence number
// (unsequenced last), breaking ties by standards weight and then by
// mapping count.
func SortByPriority(questions []domain.Question) []domain.Question {
	out := append([]domain.Question(nil), questions...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := sortSequence(out[i]), sortSequence(out[j])
		if si != sj {
			return si < sj
		}
		if len(out[i].StandardsReference) != len(out[j].StandardsReference) {
			return len(out[i].StandardsReference) > len(out[j].StandardsReference)
		}
		return len(out[i].FieldMappings) > len(out[j].FieldMappings)
	})
	return out
}

func sortSequence(q domain.Question) int {
	if q.SequenceNumber <= 0 {
		return unsequenced
	}
	return q.SequenceNumber
}

// EstimateDuration converts a question count into the coarse interview
// length estimate, clamped to the 5-30 minute presentation window.
func EstimateDuration(total int) int {
	minutes := (total*secondsPerQuestion + 59) / 60
	if minutes < minInterviewMinutes {
		return minInterviewMinutes
	}
	if minutes > maxInterviewMinutes {
		return maxInterviewMinutes
	}
	return minutes
}

// StandardsCovered lists the distinct citation prefixes (the token before
// the first space) across the questions, sorted ascending.
func StandardsCovered(questions []domain.Question) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		for _, ref := range q.StandardsReference {
			if prefix := CitationPrefix(ref); prefix != "" {
				seen[prefix] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// CitationPrefix extracts the standard code from a citation, the token
// before the first space ("S500 12.2.14 ..." yields "S500").
func CitationPrefix(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexByte(ref, ' '); i >= 0 {
		return ref[:i]
	}
	return ref
}

// Generate computes the full working set for an interview context:
// eligibility filtering, priority ordering, tier buckets, the duration
// estimate and the standards coverage summary.
func Generate(questions []domain.Question, ctx domain.InterviewContext) domain.QuestionPlan {
	eligible := FilterEligible(questions, ctx)
	ordered := SortByPriority(eligible)
	return domain.QuestionPlan{
		Questions:        ordered,
		Tiered:           OrganizeTiers(ordered),
		TotalQuestions:   len(ordered),
		EstimatedMinutes: EstimateDuration(len(ordered)),
		StandardsCovered: StandardsCovered(ordered),
	}
}
