package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CleanExpo/RestoreAssist-sub016/internal/app"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/config"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/infra/memory"
	mongoloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/mongo"
	pgloader "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/postgres"
	redissession "github.com/CleanExpo/RestoreAssist-sub016/internal/infra/redis"
	"github.com/CleanExpo/RestoreAssist-sub016/internal/library"
	transport "github.com/CleanExpo/RestoreAssist-sub016/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the interview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)
	libraryTTL := config.TTLDuration(cfg.Library.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var mongoClient *mongo.Client
	if pool == nil && cfg.Mongo.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		mongoClient, err = mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		cancel()
		if err != nil {
			return err
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	}

	var loader memory.LibraryLoader = memory.NewStaticLibraryLoader(library.DefaultQuestions())
	switch {
	case pool != nil:
		loader = pgloader.NewLibraryLoader(pool)
	case mongoClient != nil:
		loader = mongoloader.NewLibraryLoader(mongoClient, mongoDatabase(cfg))
	}
	if redisClient != nil {
		loader = redissession.NewLibraryCache(redisClient, loader, libraryTTL)
	}
	libraries := memory.NewLibraryRepository(loader, libraryTTL)

	var store app.SessionRepository
	if redisClient != nil {
		store = redissession.NewSessionStore(redisClient, sessionTTL)
	} else {
		store = memory.NewSessionStore()
	}
	service := app.NewInterviewService(store, libraries)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.Router(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting interview service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func mongoDatabase(cfg config.Config) string {
	if cfg.Mongo.Database != "" {
		return cfg.Mongo.Database
	}
	return "restoreassist"
}
