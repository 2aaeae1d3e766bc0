package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/config"
	mongoloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/mongo"
	pgloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/postgres"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/library"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewSeedCmd uploads the built-in question catalogue to the configured store.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the configured store with the built-in question catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lib, err := library.Default()
	if err != nil {
		return err
	}
	questions := lib.Questions()

	switch {
	case cfg.Postgres.URL != "":
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := pgloader.NewLibraryLoader(pool).SaveQuestions(ctx, questions); err != nil {
			return err
		}
	case cfg.Mongo.URI != "":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		if err := mongoloader.NewLibraryLoader(client, mongoDatabase(cfg)).SaveQuestions(ctx, questions); err != nil {
			return err
		}
	default:
		return fmt.Errorf("no postgres url or mongo uri configured")
	}

	log.Printf("seeded %d questions", len(questions))
	return nil
}
