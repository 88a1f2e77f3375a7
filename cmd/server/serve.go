package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/anonto42/rreediitt/backend/internal/router"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/anonto42/rreediitt/backend/internal/validators"
	"github.com/anonto42/rreediitt/backend/pkg/config"
	"github.com/anonto42/rreediitt/backend/pkg/firebase"
	"github.com/anonto42/rreediitt/backend/pkg/logger"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.Env}); err != nil {
			log.Warn("sentry disabled", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := config.InitDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.CloseDB()

	mongoDB := db.Mongo.Database(cfg.MongoDatabase)
	if cfg.AutoMigrate {
		if err := migrate(ctx, db, mongoDB); err != nil {
			return err
		}
		log.Info("migrations completed")
	}

	deps := router.Deps{
		Profiles: repositories.NewPostgresProfileRepository(db.Postgres),
		Posts:    repositories.NewPostgresPostRepository(db.Postgres),
		Comments: repositories.NewPostgresCommentRepository(db.Postgres),
		Likes:    repositories.NewPostgresLikeRepository(db.Postgres),
		Messages: repositories.NewMongoMessageRepository(mongoDB),
		Logger:   log,
	}
	if db.Redis != nil {
		deps.ProfileCache = repositories.NewRedisProfileCache(deps.Profiles, db.Redis, cfg.ProfileCacheTTL, log)
	}

	if cfg.FirebaseCredentialsPath != "" {
		app, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
		if err != nil {
			return err
		}
		deps.Directory = firebase.NewDirectory(app.AuthClient)
		if cfg.StorageBucket != "" {
			deps.Media = services.NewMediaUploader(firebase.NewBucketStore(app.StorageClient), cfg.StorageBucket, cfg.MediaPrefix)
		}
		log.Info("firebase initialized", zap.String("bucket", cfg.StorageBucket))
	} else {
		log.Warn("FIREBASE_CREDENTIALS_PATH not set, media uploads and the auth directory are disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, cfg, log)
	router.SetupRoutes(e, deps)

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
