package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

var ErrConnectionClosed = errors.New("amqp connection closed")

// broker is the part of *amqp.Connection used here.
type broker interface {
	Channel() (*amqp.Channel, error)
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

func dialBroker(url string) (broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func reconnectBackoff() backoff {
	return exponentialBackoff(time.Second, 2, time.Minute)
}

// Connection owns one AMQP connection and channel bound to a single durable
// queue. It can publish and consume, and re-dials after the broker drops it.
type Connection struct {
	url     string
	queue   string
	log     logrus.FieldLogger
	dial    func(url string) (broker, error)
	backoff func() backoff

	mu      sync.Mutex
	conn    broker
	channel *amqp.Channel
	closed  chan *amqp.Error
}

func NewConnection(url, queue string, log logrus.FieldLogger) *Connection {
	return &Connection{url: url, queue: queue, log: log, dial: dialBroker, backoff: reconnectBackoff}
}

// Connect dials a fresh connection. Any previous connection is closed first,
// since a channel-level close leaves it open.
func (c *Connection) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropLocked()
	conn, err := c.dial(c.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	c.conn, c.channel = conn, ch
	c.closed = conn.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

func (c *Connection) BindQueue() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return ErrConnectionClosed
	}
	if _, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.queue, err)
	}
	return nil
}

// Reconnect dials and binds again, backing off between failed attempts.
func (c *Connection) Reconnect(ctx context.Context) error {
	return retry(ctx, c.backoff(), func() error {
		err := c.Connect()
		if err == nil {
			err = c.BindQueue()
		}
		if err != nil {
			c.log.WithError(err).Warn("rabbitmq reconnect failed")
		}
		return err
	})
}

func (c *Connection) Publish(ctx context.Context, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return ErrConnectionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.channel.Publish("", c.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Consume starts a manual-ack consumer with prefetch 1.
func (c *Connection) Consume() (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return nil, ErrConnectionClosed
	}
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", c.queue, err)
	}
	return deliveries, nil
}

// NotifyClosed is signalled when the current connection goes away.
func (c *Connection) NotifyClosed() <-chan *amqp.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn, c.channel = nil, nil
	return err
}

func (c *Connection) dropLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn, c.channel = nil, nil
}

// KeepAlive re-dials each time the broker closes the connection, until ctx
// is done. Publishers use it; the consumer reconnects on its own.
func (c *Connection) KeepAlive(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.NotifyClosed():
			if ctx.Err() != nil {
				return
			}
			c.log.Warn("rabbitmq connection lost, reconnecting")
			if err := c.Reconnect(ctx); err != nil {
				return
			}
		}
	}
}
