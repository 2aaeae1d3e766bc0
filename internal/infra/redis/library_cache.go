package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// LibraryLoader fetches raw question content from a backing store
// (e.g., Postgres or a document DB).
type LibraryLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

const libraryKey = "interview:library:questions"

// LibraryCache stores the full question document in Redis so replicas share
// one backing-store fetch. It sits between the in-process library repository
// and the real loader, which keeps validation and stampede control in one
// place while Redis only moves bytes.
type LibraryCache struct {
	client *redis.Client
	loader LibraryLoader
	ttl    time.Duration
	rnd    *rand.Rand
}

func NewLibraryCache(client *redis.Client, loader LibraryLoader, ttl time.Duration) *LibraryCache {
	return &LibraryCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LibraryCache) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	raw, err := c.client.Get(ctx, libraryKey).Bytes()
	if err == nil {
		var questions []domain.Question
		if err := json.Unmarshal(raw, &questions); err == nil {
			return questions, nil
		}
		// Unreadable payload: fall through and refill from the loader.
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	questions, err := c.loader.LoadQuestions(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(questions); err == nil {
		// best-effort cache fill
		_ = c.client.Set(ctx, libraryKey, payload, c.ttlWithJitter()).Err()
	}
	return questions, nil
}

func (c *LibraryCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
