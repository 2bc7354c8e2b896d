// Package cache implements the per-owner session cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

const keyPrefix = "planilha:session:"

// sessionStore implements the adapter.SessionStore interface.
type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store. Every write
// refreshes the owner's TTL; a zero ttl keeps entries forever.
func NewSessionStore(client *redis.Client, ttl time.Duration) adapter.SessionStore {
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func monthKey(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":month"
}

func exclusionsKey(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":exclusions"
}

// GetSelectedMonth returns the cached selected month. ok is false on a miss.
func (s *sessionStore) GetSelectedMonth(ctx context.Context, userID uuid.UUID) (valueobject.Month, bool, error) {
	raw, err := s.client.Get(ctx, monthKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return valueobject.Month{}, false, nil
	}
	if err != nil {
		return valueobject.Month{}, false, fmt.Errorf("get selected month: %w", err)
	}

	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next select.
		return valueobject.Month{}, false, nil
	}
	return month, true, nil
}

// SetSelectedMonth caches the selected month.
func (s *sessionStore) SetSelectedMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) error {
	if err := s.client.Set(ctx, monthKey(userID), month.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("set selected month: %w", err)
	}
	return nil
}

// GetExclusions returns the cached exclusion ledger. ok is false on a miss;
// a cached empty ledger is a hit.
func (s *sessionStore) GetExclusions(ctx context.Context, userID uuid.UUID) (valueobject.ExclusionSet, bool, error) {
	raw, err := s.client.Get(ctx, exclusionsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get exclusions: %w", err)
	}

	var keys []valueobject.PredictionKey
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, false, nil
	}
	return valueobject.NewExclusionSet(keys...), true, nil
}

// SetExclusions replaces the cached exclusion ledger.
func (s *sessionStore) SetExclusions(ctx context.Context, userID uuid.UUID, set valueobject.ExclusionSet) error {
	raw, err := json.Marshal(set.Keys())
	if err != nil {
		return fmt.Errorf("encode exclusions: %w", err)
	}
	if err := s.client.Set(ctx, exclusionsKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set exclusions: %w", err)
	}
	return nil
}

// Clear drops every cached entry of the owner.
func (s *sessionStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, monthKey(userID), exclusionsKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
