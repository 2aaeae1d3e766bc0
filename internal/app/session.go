package app

import (
	"sort"
	"sync"
	"time"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/engine"
)

const (
	sourceAnswer      = "answer"
	sourceTransformer = "transformer"
)

// Session tracks one guided interview from first question to completion.
type Session struct {
	mu           sync.RWMutex
	id           string
	interview    domain.InterviewContext
	order        []string
	lastAnswered string
	answers      *domain.AnswerMap
	populations  map[string]domain.FieldPopulation
	completed    bool
	startedAt    time.Time
	updatedAt    time.Time
	now          func() time.Time
}

// SessionSnapshot is the serializable form of a session, used by stores
// that persist sessions outside process memory.
type SessionSnapshot struct {
	SessionID    string                   `json:"sessionId"`
	Context      domain.InterviewContext  `json:"context"`
	Order        []string                 `json:"questionOrder"`
	LastAnswered string                   `json:"lastAnswered,omitempty"`
	Answers      *domain.AnswerMap        `json:"answers"`
	Populations  []domain.FieldPopulation `json:"populations"`
	Completed    bool                     `json:"completed"`
	StartedAt    time.Time                `json:"startedAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

func newSession(id string, interview domain.InterviewContext, order []string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	started := now()
	return &Session{
		id:           id,
		interview:    interview,
		order:        append([]string(nil), order...),
		answers:      domain.NewAnswerMap(),
		populations:  make(map[string]domain.FieldPopulation),
		startedAt:    started,
		updatedAt:    started,
		now:          now,
	}
}

// RestoreSession rebuilds a session from a stored snapshot.
func RestoreSession(snap SessionSnapshot) *Session {
	s := &Session{
		id:           snap.SessionID,
		interview:    snap.Context,
		order:        append([]string(nil), snap.Order...),
		lastAnswered: snap.LastAnswered,
		answers:      snap.Answers,
		populations:  make(map[string]domain.FieldPopulation, len(snap.Populations)),
		completed:    snap.Completed,
		startedAt:    snap.StartedAt,
		updatedAt:    snap.UpdatedAt,
		now:          time.Now,
	}
	if s.answers == nil {
		s.answers = domain.NewAnswerMap()
	}
	for _, p := range snap.Populations {
		s.populations[p.FormFieldID] = p
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Context returns the job context the session was opened with.
func (s *Session) Context() domain.InterviewContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interview
}

// Snapshot captures the current state for serialization.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers := domain.NewAnswerMap()
	for _, field := range s.answers.Fields() {
		if v, ok := s.answers.Get(field); ok {
			answers.Set(field, v)
		}
	}
	return SessionSnapshot{
		SessionID:    s.id,
		Context:      s.interview,
		Order:        append([]string(nil), s.order...),
		LastAnswered: s.lastAnswered,
		Answers:      answers,
		Populations:  s.populationsLocked(),
		Completed:    s.completed,
		StartedAt:    s.startedAt,
		UpdatedAt:    s.updatedAt,
	}
}

func (s *Session) questionOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// begin resolves the opening question. Sessions whose plan exposes no
// visible question complete immediately.
func (s *Session) begin(ordered []domain.Question) (domain.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first, ok := engine.NextQuestion(-1, ordered, s.answers)
	if !ok {
		s.completed = true
	}
	return first, ok
}

func (s *Session) applyAnswer(questionID string, answer domain.AnswerValue, ordered []domain.Question, reg *engine.Registry) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return AnswerResult{}, domain.ErrSessionCompleted
	}
	idx := indexOfQuestion(ordered, questionID)
	if idx < 0 {
		return AnswerResult{}, domain.ErrQuestionNotFound
	}

	s.answers.Set(questionID, answer)

	question := ordered[idx]
	produced := make([]domain.FieldPopulation, 0, len(question.FieldMappings))
	for _, m := range question.FieldMappings {
		pop, ok := s.populate(m, answer, reg)
		if !ok {
			continue
		}
		s.populations[pop.FormFieldID] = pop
		produced = append(produced, pop)
	}

	s.lastAnswered = questionID
	skip := engine.EvaluateSkip(question, s.answers, ordered)
	next, ok := engine.NextQuestion(idx, ordered, s.answers)
	s.completed = !ok
	s.updatedAt = s.now()

	result := AnswerResult{
		QuestionID:  questionID,
		Populations: produced,
		Skip:        skip,
		Completed:   s.completed,
		Answered:    s.answers.Len(),
		Total:       len(ordered),
	}
	if ok {
		q := next
		result.Next = &q
	}
	return result, nil
}

// populate builds one field population from a mapping. Derived mappings run
// their transformer; an unknown transformer or an absent result drops the
// mapping rather than writing a bogus value.
func (s *Session) populate(m domain.FieldMapping, answer domain.AnswerValue, reg *engine.Registry) (domain.FieldPopulation, bool) {
	value := answer
	source := sourceAnswer
	if m.Derived() {
		fn, ok := reg.Lookup(m.Transformer)
		if !ok {
			return domain.FieldPopulation{}, false
		}
		out := fn(answer, s.interview)
		if out.IsZero() {
			return domain.FieldPopulation{}, false
		}
		value = out
		source = sourceTransformer + ":" + m.Transformer
	} else if m.Value != "" {
		value = domain.StringAnswer(m.Value)
	}
	return domain.FieldPopulation{
		FormFieldID: m.FormFieldID,
		Value:       value,
		Confidence:  engine.FieldConfidence(answer, m),
		Source:      source,
	}, true
}

func (s *Session) peekNext(ordered []domain.Question) (domain.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.completed {
		return domain.Question{}, false
	}
	return engine.NextQuestion(s.currentIndexLocked(ordered), ordered, s.answers)
}

func (s *Session) view(ordered []domain.Question) SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := SessionView{
		SessionID: s.id,
		Context:   s.interview,
		Answered:  s.answers.Len(),
		Total:     len(ordered),
		Completed: s.completed,
		StartedAt: s.startedAt,
		UpdatedAt: s.updatedAt,
	}
	if !s.completed {
		if next, ok := engine.NextQuestion(s.currentIndexLocked(ordered), ordered, s.answers); ok {
			q := next
			v.NextQuestion = &q
		}
	}
	return v
}

func (s *Session) populationList() []domain.FieldPopulation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.populationsLocked()
}

func (s *Session) populationsLocked() []domain.FieldPopulation {
	out := make([]domain.FieldPopulation, 0, len(s.populations))
	for _, p := range s.populations {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FormFieldID < out[j].FormFieldID })
	return out
}

// currentIndexLocked resolves the last answered question to its position in
// the working set. A question the library no longer carries resolves to -1,
// restarting the scan from the top.
func (s *Session) currentIndexLocked(ordered []domain.Question) int {
	if s.lastAnswered == "" {
		return -1
	}
	return indexOfQuestion(ordered, s.lastAnswered)
}

func indexOfQuestion(ordered []domain.Question, id string) int {
	for i := range ordered {
		if ordered[i].ID == id {
			return i
		}
	}
	return -1
}
