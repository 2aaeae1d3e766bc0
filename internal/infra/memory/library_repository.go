package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/library"
)

// LibraryLoader fetches raw question content from a backing store
// (e.g., Postgres or a document DB).
type LibraryLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// libraryKey is the singleflight key; the library is a single document.
const libraryKey = "library"

// LibraryRepository validates and caches the question library with TTL to
// avoid repeated store hits. Every reload passes the construction gate, so
// an invalid set in the backing store never reaches the engine.
type LibraryRepository struct {
	loader LibraryLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    *library.Library
	expiresAt time.Time
}

func NewLibraryRepository(loader LibraryLoader, ttl time.Duration) *LibraryRepository {
	return &LibraryRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *LibraryRepository) GetLibrary(ctx context.Context) (*library.Library, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cached != nil && r.expiresAt.After(now) {
		lib := r.cached
		r.mu.RUnlock()
		return lib, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(libraryKey, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cached != nil && r.expiresAt.After(now) {
			lib := r.cached
			r.mu.RUnlock()
			return lib, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}
		lib, err := library.New(questions)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = lib
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return lib, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*library.Library), nil
}

func (r *LibraryRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticLibraryLoader serves a fixed question set (useful for tests/demos
// and the zero-config default).
type StaticLibraryLoader struct {
	questions []domain.Question
}

func NewStaticLibraryLoader(questions []domain.Question) *StaticLibraryLoader {
	return &StaticLibraryLoader{questions: questions}
}

func (l *StaticLibraryLoader) LoadQuestions(_ context.Context) ([]domain.Question, error) {
	out := make([]domain.Question, len(l.questions))
	copy(out, l.questions)
	return out, nil
}
