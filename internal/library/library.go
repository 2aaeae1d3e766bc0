// Package library holds the validated, immutable question catalogue the
// interview engine works from. A Library is constructed once, checked in
// full, and then shared freely across sessions.
package library

import (
	"fmt"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/engine"
)

// RecognizedStandards maps the citation prefixes permitted in standards
// references to the publication they denote.
var RecognizedStandards = map[string]string{
	"S500":   "IICRC S500 Water Damage Restoration",
	"S520":   "IICRC S520 Mould Remediation",
	"S540":   "IICRC S540 Trauma and Crime Scene Cleanup",
	"S700":   "IICRC S700 Fire and Smoke Damage Restoration",
	"NCC":    "National Construction Code",
	"AS3666": "AS 3666 Air-handling and water systems",
}

const (
	minTextLength          = 5
	minJustificationLength = 20
)

// Library is an immutable, fully validated question catalogue. A Library
// that exists is safe to share without locking.
type Library struct {
	questions []domain.Question
	index     map[string]int
}

// New validates the definitions and builds the catalogue. Structural
// problems are fatal: every violation across the whole set is collected
// into the returned error and no Library is produced.
func New(questions []domain.Question) (*Library, error) {
	if problems := validateSet(questions); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLibrary, strings.Join(problems, "; "))
	}
	cp := append([]domain.Question(nil), questions...)
	index := make(map[string]int, len(cp))
	for i, q := range cp {
		index[q.ID] = i
	}
	return &Library{questions: cp, index: index}, nil
}

// Questions returns the catalogue entries in definition order. The slice
// is a fresh copy; the entries themselves must be treated as read-only.
func (l *Library) Questions() []domain.Question {
	out := make([]domain.Question, len(l.questions))
	copy(out, l.questions)
	return out
}

// Question looks an entry up by id.
func (l *Library) Question(id string) (domain.Question, bool) {
	i, ok := l.index[id]
	if !ok {
		return domain.Question{}, false
	}
	return l.questions[i], true
}

// Len returns the number of catalogue entries.
func (l *Library) Len() int { return len(l.questions) }

func validateSet(questions []domain.Question) []string {
	var problems []string

	ids := make(map[string]bool, len(questions))
	for i, q := range questions {
		label := q.ID
		if strings.TrimSpace(label) == "" {
			label = fmt.Sprintf("question #%d", i)
		}
		if res := engine.ValidateQuestion(q); !res.Valid {
			for _, e := range res.Errors {
				problems = append(problems, fmt.Sprintf("%s: %s", label, e))
			}
		}
		if q.ID != "" {
			if ids[q.ID] {
				problems = append(problems, fmt.Sprintf("%s: duplicate id", label))
			}
			ids[q.ID] = true
		}
		if len(strings.TrimSpace(q.Text)) <= minTextLength {
			problems = append(problems, fmt.Sprintf("%s: text too short", label))
		}
		if len(strings.TrimSpace(q.StandardsJustification)) <= minJustificationLength {
			problems = append(problems, fmt.Sprintf("%s: standards justification too short", label))
		}
		for _, ref := range q.StandardsReference {
			if _, ok := RecognizedStandards[engine.CitationPrefix(ref)]; !ok {
				problems = append(problems, fmt.Sprintf("%s: unrecognized standards citation %q", label, ref))
			}
		}
	}

	for _, q := range questions {
		for _, rule := range q.SkipLogic {
			if rule.AnswerValue.IsZero() {
				problems = append(problems, fmt.Sprintf("%s: skip rule missing answer value", q.ID))
			}
			if !ids[rule.NextQuestionID] {
				problems = append(problems, fmt.Sprintf("%s: skip target %q does not exist", q.ID, rule.NextQuestionID))
			}
		}
		for _, opt := range q.Options {
			if opt.FollowUpQuestionID != "" && !ids[opt.FollowUpQuestionID] {
				problems = append(problems, fmt.Sprintf("%s: option follow-up %q does not exist", q.ID, opt.FollowUpQuestionID))
			}
		}
		for _, cond := range q.ConditionalShows {
			if !ids[cond.Field] {
				problems = append(problems, fmt.Sprintf("%s: condition references unknown question %q", q.ID, cond.Field))
			}
		}
	}

	problems = append(problems, findSkipCycles(questions)...)
	return problems
}

// findSkipCycles walks the skip graph. Skip chains must be acyclic or an
// interview could route forever.
func findSkipCycles(questions []domain.Question) []string {
	edges := make(map[string][]string, len(questions))
	for _, q := range questions {
		for _, rule := range q.SkipLogic {
			edges[q.ID] = append(edges[q.ID], rule.NextQuestionID)
		}
	}

	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(edges))
	var problems []string

	var visit func(id string)
	visit = func(id string) {
		if color[id] != white {
			return
		}
		color[id] = grey
		for _, next := range edges[id] {
			if color[next] == grey {
				problems = append(problems, fmt.Sprintf("skip cycle through %q", next))
				continue
			}
			visit(next)
		}
		color[id] = black
	}
	for _, q := range questions {
		visit(q.ID)
	}
	return problems
}
