package repositories

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByUserEmail(ctx context.Context, email string) ([]models.Post, error)
	GetAllPosts(ctx context.Context, offset, limit int) ([]models.Post, error)
	DeleteOwnedPost(ctx context.Context, id, email string) error
	GetAuthorEmails(ctx context.Context) ([]string, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a new post
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&post).Error; err != nil {
		return nil, notFound(err)
	}
	return &post, nil
}

// GetPostsByUserEmail retrieves every post of an author, newest first
func (r *PostgresPostRepository) GetPostsByUserEmail(ctx context.Context, email string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAllPosts retrieves one page of posts, newest first
func (r *PostgresPostRepository) GetAllPosts(ctx context.Context, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteOwnedPost deletes a post only when it belongs to email.
// Likes and comments go with it through the foreign key cascade.
func (r *PostgresPostRepository) DeleteOwnedPost(ctx context.Context, id, email string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_email = ?", id, email).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAuthorEmails returns the distinct emails of everyone who has posted
func (r *PostgresPostRepository) GetAuthorEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Distinct("user_email").
		Where("user_email <> ''").
		Order("user_email").
		Pluck("user_email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

// CountByUserEmail counts the posts written by email
func (r *PostgresPostRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
