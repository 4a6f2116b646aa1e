package models

import "time"

// CacheEntry is one mirrored state document when the cache lives in postgres.
type CacheEntry struct {
	ID        string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (CacheEntry) TableName() string {
	return "dashboard_cache"
}
