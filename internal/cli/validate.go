package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/config"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/domain"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/engine"
	mongoloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/mongo"
	pgloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/postgres"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/library"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewValidateCmd checks the question catalogue without starting the server.
func NewValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the question catalogue in the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), *configPath)
		},
	}
}

func runValidate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	questions, source, err := loadCatalogue(ctx, cfg)
	if err != nil {
		return err
	}

	lib, err := library.New(questions)
	if err != nil {
		return err
	}

	reg := engine.Builtin()
	var unknown []string
	for _, q := range lib.Questions() {
		for _, m := range q.FieldMappings {
			if m.Transformer == "" {
				continue
			}
			if _, ok := reg.Lookup(m.Transformer); !ok {
				unknown = append(unknown, fmt.Sprintf("%s: unknown transformer %q", q.ID, m.Transformer))
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%s", strings.Join(unknown, "; "))
	}

	log.Printf("catalogue from %s is valid: %d questions", source, lib.Len())
	return nil
}

func loadCatalogue(ctx context.Context, cfg config.Config) ([]domain.Question, string, error) {
	switch {
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, "", err
		}
		defer pool.Close()
		questions, err := pgloader.NewLibraryLoader(pool).LoadQuestions(ctx)
		return questions, "postgres", err
	case cfg.Mongo.URI != "":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, "", err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		questions, err := mongoloader.NewLibraryLoader(client, mongoDatabase(cfg)).LoadQuestions(ctx)
		return questions, "mongo", err
	default:
		return library.DefaultQuestions(), "built-in catalogue", nil
	}
}
