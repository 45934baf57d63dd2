package credits

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSink mirrors tracker snapshots into Redis so dashboards and other
// processes can read a session's usage.
type RedisSink struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisSink creates a sink. ttl of 0 keeps keys forever.
func NewRedisSink(redisClient *redis.Client, ttl time.Duration) *RedisSink {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisSink{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Publish stores the snapshot under the session's keys in a single pipeline.
func (s *RedisSink) Publish(ctx context.Context, snap Snapshot) error {
	lastUpdateJSON, err := json.Marshal(snap.TakenAt)
	if err != nil {
		return fmt.Errorf("marshal last update: %w", err)
	}

	pipe := s.redis.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(RedisKeySessionUsed, snap.SessionID), snap.SessionCreditsUsed, s.ttl)
	pipe.Set(ctx, fmt.Sprintf(RedisKeyRemaining, snap.SessionID), snap.RemainingCredits, s.ttl)
	pipe.Set(ctx, fmt.Sprintf(RedisKeyLastUpdate, snap.SessionID), lastUpdateJSON, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store credit snapshot in redis: %w", err)
	}
	return nil
}

// Load reads a published snapshot back. A session that never published
// returns a zero snapshot carrying only the session ID.
func (s *RedisSink) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	snap := &Snapshot{SessionID: sessionID}

	used, err := s.redis.Get(ctx, fmt.Sprintf(RedisKeySessionUsed, sessionID)).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get session credits used: %w", err)
	}
	snap.SessionCreditsUsed = used

	remaining, err := s.redis.Get(ctx, fmt.Sprintf(RedisKeyRemaining, sessionID)).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get remaining credits: %w", err)
	}
	snap.RemainingCredits = remaining

	lastUpdate, err := s.redis.Get(ctx, fmt.Sprintf(RedisKeyLastUpdate, sessionID)).Bytes()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get last update: %w", err)
	}
	if len(lastUpdate) > 0 {
		if err := json.Unmarshal(lastUpdate, &snap.TakenAt); err != nil {
			return nil, fmt.Errorf("parse last update: %w", err)
		}
	}

	return snap, nil
}
