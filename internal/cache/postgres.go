package cache

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"gorm.io/gorm"
)

// EntryRepo defines the persistence operations the postgres store needs.
type EntryRepo interface {
	GetByID(ctx context.Context, id string) (*models.CacheEntry, error)
	Save(ctx context.Context, entry *models.CacheEntry) error
	Delete(ctx context.Context, id string) error
}

type PostgresStore struct {
	Repo EntryRepo
}

func NewPostgresStore(repo EntryRepo) *PostgresStore {
	return &PostgresStore{Repo: repo}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, err := s.Repo.GetByID(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Repo.Save(ctx, &models.CacheEntry{
		ID:        key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	return s.Repo.Delete(ctx, key)
}
