package mongo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
)

const questionCollection = "interview_questions"

// questionDoc wraps the JSON-encoded question so the answer value sum type
// round-trips without custom BSON codecs.
type questionDoc struct {
	ID       string `bson:"_id"`
	Position int    `bson:"position"`
	Data     string `bson:"data"`
}

// LibraryLoader loads question documents from MongoDB.
type LibraryLoader struct {
	collection *mongo.Collection
}

func NewLibraryLoader(client *mongo.Client, database string) *LibraryLoader {
	return &LibraryLoader{
		collection: client.Database(database).Collection(questionCollection),
	}
}

func (l *LibraryLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := l.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []questionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	if len(docs) == 0 {
		return nil, domain.ErrLibraryNotFound
	}

	questions := make([]domain.Question, 0, len(docs))
	for _, doc := range docs {
		var q domain.Question
		if err := json.Unmarshal([]byte(doc.Data), &q); err != nil {
			return nil, fmt.Errorf("unmarshal question %s: %w", doc.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// SaveQuestions upserts questions keyed by id, mirroring the Postgres seed
// path for Mongo-backed deployments.
func (l *LibraryLoader) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	for i, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %s: %w", q.ID, err)
		}
		doc := questionDoc{ID: q.ID, Position: i, Data: string(data)}
		opts := options.Replace().SetUpsert(true)
		if _, err := l.collection.ReplaceOne(ctx, bson.M{"_id": q.ID}, doc, opts); err != nil {
			return fmt.Errorf("upsert question %s: %w", q.ID, err)
		}
	}
	return nil
}
