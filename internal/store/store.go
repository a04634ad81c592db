// Package store defines the in-process state required by the insight
// pipeline. Implementations live under internal/store/<backend>/.
package store

import (
	"context"
	"time"

	"github.com/siderealhq/insight-service/internal/model"
)

// Store exposes profile and daily-insight state plus bulk operations.
type Store interface {
	Profiles() Profiles
	DailyInsights() DailyInsights
	Stats(ctx context.Context) (model.CacheStats, error)
	Clear(ctx context.Context) error
	Close() error
}

// Profiles owns user personalization state. Get returns
// model.ErrNotFound for unknown users.
type Profiles interface {
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Create(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error)
	AddScore(ctx context.Context, userID string, delta float64) error
	RecordInsight(ctx context.Context, req RecordInsightRequest) (*model.UserProfile, error)
}

// RecordInsightRequest carries one recorded interaction plus optional
// birth details used to seed the profile when it does not exist yet.
type RecordInsightRequest struct {
	UserID  string
	Zodiac  model.ZodiacSign
	Insight string
	Details *model.BirthDetails
}

// DailyInsights caches one generated insight per (sign, calendar date).
// Get returns model.ErrNotFound on a miss; entries are never deleted on
// read and are overwritten only by a new Set for the same key.
type DailyInsights interface {
	Get(ctx context.Context, sign model.ZodiacSign, day time.Time) (string, error)
	Set(ctx context.Context, sign model.ZodiacSign, day time.Time, insight string) error
}
