package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/avast/retry-go"
	amqp "github.com/rabbitmq/amqp091-go"
)

type RetryConfig struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

var DefaultRetry = RetryConfig{Attempts: 5, Delay: 500 * time.Millisecond, MaxDelay: 10 * time.Second}

// ErrBrokerUnavailable is returned while a failed reconnect is cooling down.
var ErrBrokerUnavailable = errors.New("amqp broker unavailable")

const (
	dialTimeout    = 2 * time.Second
	redialCooldown = 5 * time.Second
	heartbeat      = 10 * time.Second
)

// AMQPPublisher sends persistent JSON messages to a durable topic exchange.
// The channel is opened lazily and reopened after the broker drops it. A
// reconnect from Publish is a single dial bounded by the caller's context;
// after a failure further publishes fail fast until the cooldown expires.
type AMQPPublisher struct {
	url      string
	exchange string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	nextDial time.Time
}

// NewAMQPPublisher dials the broker with retries and declares the exchange.
// Cancelling ctx stops the retries.
func NewAMQPPublisher(ctx context.Context, url, exchange string, rc RetryConfig) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	err := retry.Do(
		func() error { return p.dial(ctx) },
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
		retry.RetryIf(isRetryable),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// dial makes one connection attempt. The TCP dial honours ctx.
func (p *AMQPPublisher) dial(ctx context.Context) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: heartbeat,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			dctx, cancel := context.WithTimeout(ctx, dialTimeout)
			defer cancel()
			var d net.Dialer
			return d.DialContext(dctx, network, addr)
		},
	})
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("amqp exchange declare: %w", err)
	}
	p.conn, p.ch = conn, ch
	return nil
}

func isRetryable(err error) bool {
	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		return amqpErr.Recover || amqpErr.Code == amqp.ConnectionForced || amqpErr.Code == amqp.ChannelError
	}
	return true
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.reconnectLocked(ctx); err != nil {
			log.Printf("rabbitmq: reconnect failed routing_key=%s error=%v", routingKey, err)
			return err
		}
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish failed routing_key=%s error=%v", routingKey, err)
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) reconnectLocked(ctx context.Context) error {
	if time.Now().Before(p.nextDial) {
		return ErrBrokerUnavailable
	}
	_ = p.closeLocked()
	if err := p.dial(ctx); err != nil {
		p.nextDial = time.Now().Add(redialCooldown)
		return err
	}
	p.nextDial = time.Time{}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *AMQPPublisher) closeLocked() error {
	var errs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
		p.conn = nil
	}
	return errors.Join(errs...)
}
