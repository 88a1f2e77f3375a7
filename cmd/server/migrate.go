package main

import (
	"context"
	"fmt"

	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/anonto42/rreediitt/backend/pkg/config"
	"github.com/anonto42/rreediitt/backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := config.InitDB(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.CloseDB()

		if err := migrate(cmd.Context(), db, db.Mongo.Database(cfg.MongoDatabase)); err != nil {
			return err
		}
		log.Info("migrations completed")
		return nil
	},
}

func migrate(ctx context.Context, db *config.DB, mongoDB *mongo.Database) error {
	if err := repositories.AutoMigrate(db.Postgres); err != nil {
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}
	if err := repositories.MigrateMongo(ctx, mongoDB); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}
