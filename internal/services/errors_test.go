package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_user_profiles_username"`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: user_profiles.username")))
	assert.False(t, IsUniqueViolation(errors.New("connection reset by peer")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestClassify(t *testing.T) {
	err := classify(repositories.ErrNotFound, "loading", "post not found", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "post not found")

	err = classify(gorm.ErrDuplicatedKey, "saving", "", "username is already taken")
	assert.ErrorIs(t, err, ErrConflict)

	err = classify(errStoreDown, "saving", "missing", "taken")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.EqualError(t, err, "saving: connection refused")

	// no not-found message means a missing record is an upstream failure
	err = classify(repositories.ErrNotFound, "saving", "", "")
	assert.ErrorIs(t, err, ErrUpstream)

	assert.NoError(t, classify(nil, "x", "y", "z"))
}

func TestErrorKindsDoNotCrossMatch(t *testing.T) {
	err := validationError("no data to update")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, "validation", KindValidation.String())
}
