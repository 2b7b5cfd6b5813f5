package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPRelay uses a fanout exchange: every instance binds its own exclusive
// queue, so each publish reaches every instance's hub once.
type AMQPRelay struct {
	url      string
	exchange string
	hub      *Hub
	logger   *zap.Logger

	retryDelay time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPRelay(url, exchange string, hub *Hub, logger *zap.Logger) *AMQPRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AMQPRelay{url: url, exchange: exchange, hub: hub, logger: logger, retryDelay: initialReconnectDelay}
}

// publishChannel returns the shared publishing channel, dialing on first use
// or after the connection dropped.
func (r *AMQPRelay) publishChannel() (*amqp.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil && !r.ch.IsClosed() {
		return r.ch, nil
	}
	if r.conn == nil || r.conn.IsClosed() {
		conn, err := amqp.Dial(r.url)
		if err != nil {
			return nil, fmt.Errorf("dial rabbitmq: %w", err)
		}
		r.conn = conn
	}
	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareExchange(ch, r.exchange); err != nil {
		_ = ch.Close()
		return nil, err
	}
	r.ch = ch
	return ch, nil
}

func declareExchange(ch *amqp.Channel, name string) error {
	if err := ch.ExchangeDeclare(name, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	return nil
}

func (r *AMQPRelay) BroadcastChairsChanged(ctx context.Context) error {
	ch, err := r.publishChannel()
	if err != nil {
		return err
	}
	body, err := json.Marshal(Event{Name: EventChairUpdated, At: time.Now().UTC()})
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx, r.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
}

// Run consumes with a reconnect loop until ctx is done.
func (r *AMQPRelay) Run(ctx context.Context) error {
	return keepRelaying(ctx, r.logger, r.retryDelay, r.consume)
}

func (r *AMQPRelay) consume(ctx context.Context) error {
	conn, err := amqp.Dial(r.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := declareExchange(ch, r.exchange); err != nil {
		return err
	}
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", r.exchange, false, nil); err != nil {
		return fmt.Errorf("queue bind: %w", err)
	}
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}
	r.logger.Info("relaying chair events from rabbitmq", zap.String("exchange", r.exchange))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			var ev Event
			if err := json.Unmarshal(d.Body, &ev); err != nil || ev.Name == "" {
				r.logger.Warn("ignoring malformed chair event", zap.ByteString("body", d.Body))
				continue
			}
			r.hub.Deliver(ev)
		}
	}
}

func (r *AMQPRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
