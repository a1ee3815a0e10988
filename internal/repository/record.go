package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// record - a JSON value stored under "<kind>:<id>".
type record struct {
	client *redis.Client
	kind   string
	ttl    time.Duration
}

func (that record) key(id string) string {
	return that.kind + ":" + id
}

// save - writes the value and restarts its ttl, zero ttl keeps the key forever.
func (that record) save(ctx context.Context, id string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", that.kind, err)
	}

	if err = that.client.Set(ctx, that.key(id), body, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", that.kind, err)
	}

	return nil
}

// load - decodes the stored value into dst, a missing key is reported as notFound.
func (that record) load(ctx context.Context, id string, dst any, notFound error) error {
	body, err := that.client.Get(ctx, that.key(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return notFound
	case err != nil:
		return fmt.Errorf("failed to get %s by ID: %w", that.kind, err)
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", that.kind, err)
	}

	return nil
}

func (that record) remove(ctx context.Context, id string, notFound error) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s by ID: %w", that.kind, err)
	}

	if deleted == 0 {
		return notFound
	}

	return nil
}
