package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// DefaultChannel is the Redis channel used when none is configured.
const DefaultChannel = "caseprogression.events"

// Message is the JSON document published to Redis for each event.
type Message struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	Seq           uint64          `json:"seq"`
	Type          string          `json:"type"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	CausationID   string          `json:"causation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// MessageFor converts a committed event to its wire form.
func MessageFor(evt event.Event) Message {
	payload := json.RawMessage(evt.PayloadJSON)
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	return Message{
		ID:            evt.ID,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		Seq:           evt.Seq,
		Type:          string(evt.Type),
		Timestamp:     evt.Timestamp,
		CorrelationID: evt.CorrelationID,
		CausationID:   evt.CausationID,
		Payload:       payload,
	}
}

// RedisPublisher publishes committed events to a Redis pub/sub channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

// NewRedisPublisher connects to addr and verifies the connection.
func NewRedisPublisher(ctx context.Context, addr, channel string) (*RedisPublisher, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisPublisher(rdb, channel), nil
}

func newRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

// Publish sends one message per event in order.
func (p *RedisPublisher) Publish(ctx context.Context, events []event.Event) error {
	for _, evt := range events {
		raw, err := json.Marshal(MessageFor(evt))
		if err != nil {
			return fmt.Errorf("encode event %s: %w", evt.ID, err)
		}
		if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
			return fmt.Errorf("publish event %s: %w", evt.ID, err)
		}
	}
	return nil
}

// Close closes the Redis client. It is nil-safe.
func (p *RedisPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
