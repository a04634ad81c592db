// Package memstore is a volatile in-process store backed by go-cache.
// All read-modify-write sequences run under one mutex, so concurrent
// recordings for the same user never lose a score or history update.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/siderealhq/insight-service/internal/model"
	"github.com/siderealhq/insight-service/internal/store"
)

const backendName = "in-memory"

// Store implements store.Store. Contents do not survive a restart;
// persistence durability is out of scope for this service.
type Store struct {
	mu  sync.Mutex
	c   *gocache.Cache
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		c:   gocache.New(gocache.NoExpiration, 0),
		now: time.Now,
	}
}

func profileKey(userID string) string { return "user:profile:" + userID }

func dailyKey(sign model.ZodiacSign, day time.Time) string {
	return fmt.Sprintf("insight:daily:%s:%s", sign, day.Format("2006-01-02"))
}

func (s *Store) Profiles() store.Profiles           { return (*profiles)(s) }
func (s *Store) DailyInsights() store.DailyInsights { return (*dailyInsights)(s) }

func (s *Store) Stats(ctx context.Context) (model.CacheStats, error) {
	return model.CacheStats{
		CacheEnabled: true,
		CacheBackend: backendName,
		TotalKeys:    s.c.ItemCount(),
	}, nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Flush()
	return nil
}

func (s *Store) Close() error { return nil }

// getProfile returns the stored profile without copying. Callers must
// hold s.mu.
func (s *Store) getProfile(userID string) (*model.UserProfile, bool) {
	v, ok := s.c.Get(profileKey(userID))
	if !ok {
		return nil, false
	}
	return v.(*model.UserProfile), true
}

// clone shields callers from the mutable stored object.
func clone(p *model.UserProfile) *model.UserProfile {
	cp := *p
	cp.PastInsights = append([]model.PastInsight(nil), p.PastInsights...)
	return &cp
}

type profiles Store

func (ps *profiles) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.getProfile(userID)
	if !ok {
		return nil, model.ErrNotFound
	}
	return clone(p), nil
}

func (ps *profiles) Create(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	s := (*Store)(ps)
	if p.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := clone(p)
	stored.Score = 0
	stored.InsightsCount = 0
	stored.PastInsights = nil
	stored.CreatedAt = now
	stored.LastUpdated = now
	s.c.Set(profileKey(p.UserID), stored, gocache.NoExpiration)
	return clone(stored), nil
}

func (ps *profiles) AddScore(ctx context.Context, userID string, delta float64) error {
	s := (*Store)(ps)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p, ok := s.getProfile(userID)
	if !ok {
		p = &model.UserProfile{UserID: userID, CreatedAt: now}
		s.c.Set(profileKey(userID), p, gocache.NoExpiration)
	}
	p.Score += delta
	p.LastUpdated = now
	return nil
}

func (ps *profiles) RecordInsight(ctx context.Context, req store.RecordInsightRequest) (*model.UserProfile, error) {
	s := (*Store)(ps)
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p, ok := s.getProfile(req.UserID)
	if !ok {
		p = &model.UserProfile{
			UserID:          req.UserID,
			PreferredZodiac: req.Zodiac,
			CreatedAt:       now,
		}
		if d := req.Details; d != nil {
			p.Name = d.Name
			p.BirthDate = d.BirthDate
			p.BirthTime = d.BirthTime
			p.BirthPlace = d.BirthPlace
			p.Latitude = d.Latitude
			p.Longitude = d.Longitude
		}
		s.c.Set(profileKey(req.UserID), p, gocache.NoExpiration)
	}

	p.InsightsCount++
	p.PastInsights = append(p.PastInsights, model.PastInsight{
		Zodiac:    req.Zodiac,
		Insight:   req.Insight,
		Timestamp: now,
	})
	if n := len(p.PastInsights); n > model.MaxPastInsights {
		p.PastInsights = append([]model.PastInsight(nil), p.PastInsights[n-model.MaxPastInsights:]...)
	}
	p.LastUpdated = now
	return clone(p), nil
}

type dailyInsights Store

func (di *dailyInsights) Get(ctx context.Context, sign model.ZodiacSign, day time.Time) (string, error) {
	s := (*Store)(di)
	v, ok := s.c.Get(dailyKey(sign, day))
	if !ok {
		return "", model.ErrNotFound
	}
	return v.(string), nil
}

func (di *dailyInsights) Set(ctx context.Context, sign model.ZodiacSign, day time.Time, insight string) error {
	s := (*Store)(di)
	s.c.Set(dailyKey(sign, day), insight, gocache.NoExpiration)
	return nil
}
