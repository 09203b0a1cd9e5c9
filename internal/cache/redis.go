package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cityform:"

// Client stores JSON values in Redis under a fixed TTL.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to url and pings it before returning.
func New(url string, ttl time.Duration) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return NewWithRedis(rdb, ttl), nil
}

func NewWithRedis(rdb *redis.Client, ttl time.Duration) *Client {
	return &Client{rdb: rdb, ttl: ttl}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Get reports whether key was present and decoded into dest.
func (c *Client) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) Set(ctx context.Context, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, b, c.ttl).Err()
}
