package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisRelay publishes chair events on a pub/sub channel and relays every
// message on that channel, including its own, into the local hub.
type RedisRelay struct {
	client  *redis.Client
	channel string
	hub     *Hub
	logger  *zap.Logger

	retryDelay time.Duration
}

func NewRedisRelay(client *redis.Client, channel string, hub *Hub, logger *zap.Logger) *RedisRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRelay{client: client, channel: channel, hub: hub, logger: logger, retryDelay: initialReconnectDelay}
}

func (r *RedisRelay) BroadcastChairsChanged(ctx context.Context) error {
	body, err := json.Marshal(Event{Name: EventChairUpdated, At: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, body).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", r.channel, err)
	}
	return nil
}

// Run relays until ctx is done, resubscribing whenever the subscription
// cannot be established or is lost.
func (r *RedisRelay) Run(ctx context.Context) error {
	return keepRelaying(ctx, r.logger, r.retryDelay, r.relay)
}

func (r *RedisRelay) relay(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe %s: %w", r.channel, err)
	}
	r.logger.Info("relaying chair events from redis", zap.String("channel", r.channel))

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("redis subscription %s closed", r.channel)
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil || ev.Name == "" {
				r.logger.Warn("ignoring malformed chair event", zap.String("payload", msg.Payload))
				continue
			}
			r.hub.Deliver(ev)
		}
	}
}

func (r *RedisRelay) Close() error { return nil }
