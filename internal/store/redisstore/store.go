package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rankedlog/internal/game"
)

const keyPrefix = "rankedlog:summary:"

// Store keeps champion summary cache entries in a Redis hash per champion.
// Entries have no TTL: the roster bounds cardinality and validity is decided
// by fingerprint comparison, not by age.
type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Ping verifies connectivity at startup.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) Get(ctx context.Context, champion string) (*game.ChampionSummary, error) {
	fields, err := s.rdb.HGetAll(ctx, keyPrefix+champion).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	entry := &game.ChampionSummary{
		Champion:    champion,
		Summary:     fields["summary"],
		Fingerprint: fields["fingerprint"],
	}
	if ts, err := time.Parse(time.RFC3339, fields["updated_at"]); err == nil {
		entry.UpdatedAt = ts
	}
	return entry, nil
}

func (s *Store) Put(ctx context.Context, entry *game.ChampionSummary) error {
	err := s.rdb.HSet(ctx, keyPrefix+entry.Champion,
		"summary", entry.Summary,
		"fingerprint", entry.Fingerprint,
		"updated_at", entry.UpdatedAt.Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", game.ErrStoreUnavailable, err)
	}
	return nil
}
