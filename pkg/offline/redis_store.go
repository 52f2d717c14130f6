package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	genSetKey     = "offline:generations"
	genHashPrefix = "offline:cache:"
)

// redisEntry is the stored JSON shape of an Entry.
type redisEntry struct {
	Status   int                 `json:"status"`
	Header   map[string][]string `json:"header"`
	Body     []byte              `json:"body"`
	StoredAt time.Time           `json:"stored_at"`
}

// RedisStore keeps each cache generation in a Redis hash keyed by the exact
// request key, with the generation names tracked in a set so activation can
// enumerate and drop stale ones.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func genKey(generation string) string { return genHashPrefix + generation }

func (s *RedisStore) Get(ctx context.Context, generation, key string) (*Entry, error) {
	raw, err := s.rdb.HGet(ctx, genKey(generation), key).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("offline: redis get: %w", err)
	}
	var re redisEntry
	if err := json.Unmarshal(raw, &re); err != nil {
		return nil, fmt.Errorf("offline: decode entry: %w", err)
	}
	return &Entry{
		Status:   re.Status,
		Header:   re.Header,
		Body:     re.Body,
		StoredAt: re.StoredAt,
	}, nil
}

func (s *RedisStore) Put(ctx context.Context, generation, key string, e *Entry) error {
	raw, err := json.Marshal(redisEntry{
		Status:   e.Status,
		Header:   e.Header,
		Body:     e.Body,
		StoredAt: e.StoredAt,
	})
	if err != nil {
		return fmt.Errorf("offline: encode entry: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, genKey(generation), key, raw)
	pipe.SAdd(ctx, genSetKey, generation)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("offline: redis put: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, generation, key string) error {
	if err := s.rdb.HDel(ctx, genKey(generation), key).Err(); err != nil {
		return fmt.Errorf("offline: redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) Keys(ctx context.Context, generation string) ([]string, error) {
	keys, err := s.rdb.HKeys(ctx, genKey(generation)).Result()
	if err != nil {
		return nil, fmt.Errorf("offline: redis keys: %w", err)
	}
	return keys, nil
}

func (s *RedisStore) Generations(ctx context.Context) ([]string, error) {
	names, err := s.rdb.SMembers(ctx, genSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("offline: redis generations: %w", err)
	}
	return names, nil
}

func (s *RedisStore) Drop(ctx context.Context, generation string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, genKey(generation))
	pipe.SRem(ctx, genSetKey, generation)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("offline: redis drop: %w", err)
	}
	return nil
}
