package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/rreediitt/backend/internal/repositories"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a service failure
type Kind int

const (
	KindUpstream Kind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "upstream"
	}
}

// Error is returned by every service operation that fails
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrValidation = &Error{Kind: KindValidation}
	ErrUpstream   = &Error{Kind: KindUpstream}
)

func notFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func upstreamError(msg string, err error) error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// classify turns a store error into a service error. Missing records become
// notFoundMsg, unique violations become conflictMsg, anything else is upstream.
func classify(err error, msg, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case notFoundMsg != "" && errors.Is(err, repositories.ErrNotFound):
		return notFoundError(notFoundMsg)
	case conflictMsg != "" && IsUniqueViolation(err):
		return &Error{Kind: KindConflict, Message: conflictMsg, Err: err}
	default:
		return upstreamError(msg, err)
	}
}

// IsUniqueViolation reports whether err is a duplicate key error. Structured
// errors are checked first, the message text only as a fallback.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "duplicate key") || strings.Contains(text, "unique constraint")
}

// IsForeignKeyViolation reports whether err is a foreign key error
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
