package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces session records in Redis.
const KeyPrefix = "academy:session:"

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStore keeps session records in Redis with a sliding TTL.
type RedisStore struct {
	Db  *redis.Client
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{Db: db, ttl: opts.TTL}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*User, error) {
	const op = "session.RedisStore.Get"
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		// A hit slides the expiry forward.
		cmd = s.Db.GetEx(ctx, KeyPrefix+id, s.ttl)
	} else {
		cmd = s.Db.Get(ctx, KeyPrefix+id)
	}
	raw, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return decodeUser(raw)
}

func (s *RedisStore) Set(ctx context.Context, id string, user *User) error {
	const op = "session.RedisStore.Set"
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err := s.Db.Set(ctx, KeyPrefix+id, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	const op = "session.RedisStore.Clear"
	if err := s.Db.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.Db.Close()
}
