package episodes

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore archives records in Redis, optionally with expiry so old
// episodes age out of a shared cache.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // key prefix, default "cge:"
	TTL      time.Duration // record expiry, default 0 (keep forever)
}

// NewRedisStore creates a store over a new Redis client.
func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "cge:"
	}

	return &RedisStore{client: client, prefix: prefix, ttl: opts.TTL}
}

func (s *RedisStore) recordKey(id string) string {
	return fmt.Sprintf("%sepisode:%s", s.prefix, id)
}

func (s *RedisStore) indexKey() string {
	return fmt.Sprintf("%sepisodes", s.prefix)
}

// Save inserts or replaces a record and indexes its id.
func (s *RedisStore) Save(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.recordKey(record.ID), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), record.ID)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.indexKey(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record to redis: %w", err)
	}
	return nil
}

// Load returns the record with the given id.
func (s *RedisStore) Load(ctx context.Context, id string) (*Record, error) {
	data, err := s.client.Get(ctx, s.recordKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load record from redis: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

// List returns all records, oldest first. Ids whose records have
// expired are skipped.
func (s *RedisStore) List(ctx context.Context) ([]*Record, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list record ids: %w", err)
	}
	if len(ids) == 0 {
		return []*Record{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.recordKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	records := make([]*Record, 0, len(values))
	for _, value := range values {
		data, ok := value.(string)
		if !ok {
			continue
		}
		var record Record
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			continue
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

// Delete removes a record and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.recordKey(id))
	pipe.SRem(ctx, s.indexKey(), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
