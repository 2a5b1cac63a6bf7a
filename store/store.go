package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrPropertyMismatch = errors.New("property does not belong to the instance's data type")
	ErrInvalidInput     = errors.New("invalid input")
)

// Store wraps the database handle shared by all repositories.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// notFound converts gorm.ErrRecordNotFound into ErrNotFound naming what was
// looked up.
func notFound(err error, kind, publicID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %q: %w", kind, publicID, ErrNotFound)
	}
	return fmt.Errorf("find %s %q: %w", kind, publicID, err)
}
