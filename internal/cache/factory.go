package cache

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/repository/posgrest"
	"github.com/sirupsen/logrus"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Open builds the store selected by CACHE_BACKEND. The returned closer releases
// any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Cache.Backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile, "":
		store, err := NewFileStore(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case BackendRedis:
		client, err := cfg.Redis.Connect(ctx)
		if err != nil {
			return nil, nil, err
		}
		logrus.Infof("Cache backed by redis at %s", cfg.Redis.Addr)
		return NewRedisStore(client), client.Close, nil
	case BackendPostgres:
		db, err := cfg.DB.GormConnect()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.CacheEntry{}); err != nil {
			return nil, nil, fmt.Errorf("failed to auto migrate: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		logrus.Infof("Cache backed by postgres at %s", cfg.DB.HOST)
		return NewPostgresStore(posgrest.New[models.CacheEntry](db)), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
