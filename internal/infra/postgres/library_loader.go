package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

// LibraryLoader loads question JSONB rows from Postgres.
type LibraryLoader struct {
	pool *pgxpool.Pool
}

func NewLibraryLoader(pool *pgxpool.Pool) *LibraryLoader {
	return &LibraryLoader{pool: pool}
}

func (l *LibraryLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM interview_questions ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var q domain.Question
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, domain.ErrLibraryNotFound
	}
	return questions, nil
}

// SaveQuestions upserts questions keyed by id. Position follows slice order
// so the stored set replays in catalogue order.
func (l *LibraryLoader) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %s: %w", q.ID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO interview_questions (id, position, data) VALUES ($1, $2, $3::jsonb)
			 ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, data = EXCLUDED.data`,
			q.ID, i, string(data)); err != nil {
			return fmt.Errorf("upsert question %s: %w", q.ID, err)
		}
	}
	return tx.Commit(ctx)
}
