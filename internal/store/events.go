package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"aegiswhistle/backend/internal/models"
)

const eventsChannel = "cases:events"

// RedisEventBus relays case events between server instances over Redis
// Pub/Sub, so every instance's dashboards see mutations made on any of them.
type RedisEventBus struct {
	Redis *redis.Client
	Ctx   context.Context
}

// NewRedisEventBus constructor.
func NewRedisEventBus(rdb *redis.Client) *RedisEventBus {
	return &RedisEventBus{
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// PublishEvent serializes the event and publishes it on the shared channel.
func (b *RedisEventBus) PublishEvent(evt models.CaseEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.Redis.Publish(b.Ctx, eventsChannel, string(payload)).Err()
}

// SubscribeEvents subscribes to the shared case-event channel.
func (b *RedisEventBus) SubscribeEvents() *redis.PubSub {
	return b.Redis.Subscribe(b.Ctx, eventsChannel)
}
