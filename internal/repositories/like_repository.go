package repositories

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	UpsertLike(ctx context.Context, like *models.Like) error
	CountByPostID(ctx context.Context, postID string) (models.LikeCount, error)
	CountReceivedByUserEmail(ctx context.Context, email string) (models.LikeCount, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// UpsertLike inserts the like or, when the (post, user) pair already exists,
// overwrites its flag in the same statement.
func (r *PostgresLikeRepository) UpsertLike(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).
		Omit("Post").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
		}).
		Create(like).Error
}

// CountByPostID tallies likes and dislikes on a post
func (r *PostgresLikeRepository) CountByPostID(ctx context.Context, postID string) (models.LikeCount, error) {
	return r.tally(r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID))
}

// CountReceivedByUserEmail tallies likes and dislikes on every post written by email
func (r *PostgresLikeRepository) CountReceivedByUserEmail(ctx context.Context, email string) (models.LikeCount, error) {
	authored := r.db.WithContext(ctx).Model(&models.Post{}).Select("id").Where("user_email = ?", email)
	return r.tally(r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id IN (?)", authored))
}

func (r *PostgresLikeRepository) tally(query *gorm.DB) (models.LikeCount, error) {
	var rows []struct {
		IsLike bool
		Total  int64
	}
	var count models.LikeCount
	if err := query.Select("is_like, COUNT(*) AS total").Group("is_like").Scan(&rows).Error; err != nil {
		return count, err
	}
	for _, row := range rows {
		if row.IsLike {
			count.Likes = row.Total
		} else {
			count.Dislikes = row.Total
		}
	}
	return count, nil
}
