package repositories

import (
	"context"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileDisplayStore fetches display snapshots for a set of emails in one call
type ProfileDisplayStore interface {
	GetDisplayByEmails(ctx context.Context, emails []string) ([]models.ProfileDisplay, error)
}

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	ProfileDisplayStore
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, email string, updates map[string]interface{}) (*models.Profile, error)
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetByUsername retrieves a profile by its username
func (r *PostgresProfileRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by its email
func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// GetDisplayByEmails selects only the display columns of the given profiles
func (r *PostgresProfileRepository) GetDisplayByEmails(ctx context.Context, emails []string) ([]models.ProfileDisplay, error) {
	var displays []models.ProfileDisplay
	if len(emails) == 0 {
		return displays, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("email", "username", "avatar_url").
		Where("email IN ?", emails).
		Find(&displays).Error
	if err != nil {
		return nil, err
	}
	return displays, nil
}

// Create inserts a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update applies the given column updates and returns the stored row
func (r *PostgresProfileRepository) Update(ctx context.Context, email string, updates map[string]interface{}) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Profile{}).Where("email = ?", email).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("email = ?", email).Take(&profile).Error
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}
