// Package redissink implements a saga1000.Sink that publishes each
// decoded record as JSON to a Redis channel, grounded on
// librescoot-bluetooth-service/pkg/redis (redis.NewClient,
// Pipeline()/Publish).
package redissink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jkgomes/saga1000-client/schema"
)

// Sink publishes every Record it receives as JSON on Channel, and also
// writes it to a per-command hash key so the latest reading can be read
// back without subscribing.
type Sink struct {
	client  *redis.Client
	Channel string
	ctx     context.Context
}

// New connects to a Redis server at addr and returns a Sink that
// publishes to channel.
func New(addr, password string, db int, channel string) (*Sink, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redissink: failed to connect to redis: %w", err)
	}
	return &Sink{client: client, Channel: channel, ctx: ctx}, nil
}

// Receive implements saga1000.Sink.
func (s *Sink) Receive(rec schema.Record) error {
	fields := make(map[string]any, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Truncated || f.Err != nil {
			continue
		}
		fields[f.Name] = f.Value.Any()
	}
	raw, err := json.Marshal(struct {
		Command byte           `json:"command"`
		Fields  map[string]any `json:"fields"`
	}{Command: rec.Command, Fields: fields})
	if err != nil {
		return err
	}

	key := fmt.Sprintf("saga1000:%d", rec.Command)
	pipe := s.client.Pipeline()
	pipe.HSet(s.ctx, key, "fields", raw)
	pipe.Publish(s.ctx, s.Channel, raw)
	_, err = pipe.Exec(s.ctx)
	return err
}

// Close releases the underlying Redis connection.
func (s *Sink) Close() error {
	return s.client.Close()
}
