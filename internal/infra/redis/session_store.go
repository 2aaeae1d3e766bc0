package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/app"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// SessionStore persists interview sessions as JSON snapshots so any service
// instance can serve any session. Keys expire after ttl of inactivity; every
// Save refreshes the clock.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, session *app.Session) error {
	return s.write(ctx, session)
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*app.Session, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var snap app.SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return app.RestoreSession(snap), nil
}

func (s *SessionStore) Save(ctx context.Context, session *app.Session) error {
	return s.write(ctx, session)
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) write(ctx context.Context, session *app.Session) error {
	raw, err := json.Marshal(session.Snapshot())
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID(), err)
	}
	if err := s.client.Set(ctx, s.key(session.ID()), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "interview:session:" + sessionID
}
