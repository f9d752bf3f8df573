package live

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

func encode(ev Event) ([]byte, error) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	return json.Marshal(ev)
}

// LocalPublisher delivers straight to an in-process hub.
type LocalPublisher struct {
	hub *Hub
}

func NewLocalPublisher(hub *Hub) *LocalPublisher {
	return &LocalPublisher{hub: hub}
}

func (p *LocalPublisher) Publish(_ context.Context, tenantID, channel string, ev Event) error {
	data, err := encode(ev)
	if err != nil {
		return err
	}
	p.hub.Broadcast(tenantID, channel, data)
	return nil
}

// RedisPublisher fans events out to every API instance through redis
// pub/sub; each instance relays them with Hub.RunRedisRelay.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, tenantID, channel string, ev Event) error {
	data, err := encode(ev)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, RedisChannel(tenantID, channel), string(data)).Err()
}
