package cache

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/pagesync/internal/compress"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// pageEditedHash maps a page id to the edit time of its cached body.
	pageEditedHash = "page:content:edited"
)

func contentKey(pageID, edited string) string {
	return "page:content:" + pageID + ":" + edited
}

// NewRedisClient connects to redis and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		Protocol: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

var _ ContentCache = (*RedisContentCache)(nil)

type RedisContentCache struct {
	client  *redis.Client
	encoder compress.Compress
	ttl     time.Duration
}

func NewRedisContentCache(client *redis.Client, encoder compress.Compress, ttl time.Duration) *RedisContentCache {
	if encoder == nil {
		encoder = compress.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &RedisContentCache{client: client, encoder: encoder, ttl: ttl}
}

func (r *RedisContentCache) GetContent(ctx context.Context, pageID, edited string) (string, bool, error) {
	res := r.client.Get(ctx, contentKey(pageID, edited))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return "", false, nil
		}
		return "", false, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return "", false, err
	}

	content, err := r.encoder.Decode(buf)
	if err != nil {
		return "", false, err
	}

	logrus.Debugf("content cache hit for page %s", pageID)
	return string(content), true, nil
}

// SetContent stores the body and drops the body cached for an older edit of the same page.
func (r *RedisContentCache) SetContent(ctx context.Context, pageID, edited, content string) error {
	encoded, err := r.encoder.Encode([]byte(content))
	if err != nil {
		return err
	}

	previous := r.client.HGet(ctx, pageEditedHash, pageID)
	if previous.Err() != nil && !errors.Is(previous.Err(), redis.Nil) {
		return previous.Err()
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if old := previous.Val(); old != "" && old != edited {
			if err := p.Del(ctx, contentKey(pageID, old)).Err(); err != nil {
				return err
			}
		}

		if err := p.Set(ctx, contentKey(pageID, edited), encoded, r.ttl).Err(); err != nil {
			return err
		}

		return p.HSet(ctx, pageEditedHash, pageID, edited).Err()
	})

	return err
}

func (r *RedisContentCache) DeleteContent(ctx context.Context, pageID string) error {
	edited := r.client.HGet(ctx, pageEditedHash, pageID)
	if edited.Err() != nil {
		if errors.Is(edited.Err(), redis.Nil) {
			return nil
		}
		return edited.Err()
	}

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if err := p.Del(ctx, contentKey(pageID, edited.Val())).Err(); err != nil {
			return err
		}
		return p.HDel(ctx, pageEditedHash, pageID).Err()
	})

	return err
}
