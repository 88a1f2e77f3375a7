package repositories

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the relational tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}

// MigrateMongo creates the document store indexes
func MigrateMongo(ctx context.Context, db *mongo.Database) error {
	return NewMongoMessageRepository(db).EnsureIndexes(ctx)
}
