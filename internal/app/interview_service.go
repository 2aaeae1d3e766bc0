package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/engine"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/library"
)

// SessionRepository abstracts how interview sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// LibraryRepository loads the question library (from cache/backing store).
type LibraryRepository interface {
	GetLibrary(ctx context.Context) (*library.Library, error)
}

// InterviewService contains the core interview use cases.
type InterviewService struct {
	sessions     SessionRepository
	libraries    LibraryRepository
	transformers *engine.Registry
	newID        func() string
	now          func() time.Time
}

func NewInterviewService(sessions SessionRepository, libraries LibraryRepository) *InterviewService {
	return &InterviewService{
		sessions:     sessions,
		libraries:    libraries,
		transformers: engine.Builtin(),
		newID:        uuid.NewString,
		now:          time.Now,
	}
}

// NewInterviewServiceWithClock is test-only for deterministic ids and timestamps.
func NewInterviewServiceWithClock(sessions SessionRepository, libraries LibraryRepository, newID func() string, now func() time.Time) *InterviewService {
	svc := NewInterviewService(sessions, libraries)
	if newID != nil {
		svc.newID = newID
	}
	if now != nil {
		svc.now = now
	}
	return svc
}

// StartResult is returned when a new interview session opens.
type StartResult struct {
	SessionID     string              `json:"sessionId"`
	Plan          domain.QuestionPlan `json:"plan"`
	FirstQuestion *domain.Question    `json:"firstQuestion,omitempty"`
	Completed     bool                `json:"completed"`
}

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	QuestionID  string                   `json:"questionId"`
	Populations []domain.FieldPopulation `json:"populations"`
	Skip        engine.SkipResult        `json:"skip"`
	Next        *domain.Question         `json:"nextQuestion,omitempty"`
	Completed   bool                     `json:"completed"`
	Answered    int                      `json:"answeredCount"`
	Total       int                      `json:"totalQuestions"`
}

// SessionView is a read-only summary of a session's progress.
type SessionView struct {
	SessionID    string                  `json:"sessionId"`
	Context      domain.InterviewContext `json:"context"`
	Answered     int                     `json:"answeredCount"`
	Total        int                     `json:"totalQuestions"`
	Completed    bool                    `json:"completed"`
	StartedAt    time.Time               `json:"startedAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
	NextQuestion *domain.Question        `json:"nextQuestion,omitempty"`
}

// Plan computes the tiered question plan for a job context without opening
// a session.
func (s *InterviewService) Plan(ctx context.Context, interview domain.InterviewContext) (domain.QuestionPlan, error) {
	if !interview.JobType.Valid() {
		return domain.QuestionPlan{}, domain.ErrUnknownJobType
	}
	lib, err := s.libraries.GetLibrary(ctx)
	if err != nil {
		return domain.QuestionPlan{}, err
	}
	return engine.Generate(lib.Questions(), interview), nil
}

// Start plans the question set for the job context, opens a session and
// returns the first visible question.
func (s *InterviewService) Start(ctx context.Context, interview domain.InterviewContext) (StartResult, error) {
	if !interview.JobType.Valid() {
		return StartResult{}, domain.ErrUnknownJobType
	}
	lib, err := s.libraries.GetLibrary(ctx)
	if err != nil {
		return StartResult{}, err
	}
	plan := engine.Generate(lib.Questions(), interview)
	order := make([]string, len(plan.Questions))
	for i, q := range plan.Questions {
		order[i] = q.ID
	}

	session := newSession(s.newID(), interview, order, s.now)
	first, ok := session.begin(plan.Questions)
	if err := s.sessions.Create(ctx, session); err != nil {
		return StartResult{}, err
	}

	result := StartResult{SessionID: session.ID(), Plan: plan, Completed: !ok}
	if ok {
		q := first
		result.FirstQuestion = &q
	}
	return result, nil
}

// SubmitAnswer records an answer, populates the mapped form fields and
// advances the session.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID, questionID string, answer domain.AnswerValue) (AnswerResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}
	ordered, err := s.workingSet(ctx, session)
	if err != nil {
		return AnswerResult{}, err
	}
	result, err := session.applyAnswer(questionID, answer, ordered, s.transformers)
	if err != nil {
		return AnswerResult{}, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return AnswerResult{}, err
	}
	return result, nil
}

// NextQuestion reports the next visible question without recording anything.
// A nil question means the interview has nothing further to ask.
func (s *InterviewService) NextQuestion(ctx context.Context, sessionID string) (*domain.Question, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ordered, err := s.workingSet(ctx, session)
	if err != nil {
		return nil, err
	}
	next, ok := session.peekNext(ordered)
	if !ok {
		return nil, nil
	}
	q := next
	return &q, nil
}

// Describe summarizes a session's progress.
func (s *InterviewService) Describe(ctx context.Context, sessionID string) (SessionView, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}
	ordered, err := s.workingSet(ctx, session)
	if err != nil {
		return SessionView{}, err
	}
	return session.view(ordered), nil
}

// Populations returns every form field populated so far, sorted by field id.
func (s *InterviewService) Populations(ctx context.Context, sessionID string) ([]domain.FieldPopulation, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.populationList(), nil
}

// Abandon discards a session. Submitted answers and populations are lost.
func (s *InterviewService) Abandon(ctx context.Context, sessionID string) error {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionID)
}

// workingSet materializes the session's planned questions from the library,
// dropping ids the current library no longer carries.
func (s *InterviewService) workingSet(ctx context.Context, session *Session) ([]domain.Question, error) {
	lib, err := s.libraries.GetLibrary(ctx)
	if err != nil {
		return nil, err
	}
	ids := session.questionOrder()
	ordered := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := lib.Question(id); ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}
