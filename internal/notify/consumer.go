package notify

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// Consumer executes queued envelopes one delivery at a time.
type Consumer struct {
	exec *Executor
	log  logrus.FieldLogger
}

func NewConsumer(exec *Executor, log logrus.FieldLogger) *Consumer {
	return &Consumer{exec: exec, log: log}
}

// Handle acks a delivery whose task succeeded. Undecodable bodies and failed
// tasks are nacked without requeue.
func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	var env Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		c.log.WithError(err).Error("drop undecodable delivery")
		_ = d.Nack(false, false)
		return
	}
	if err := c.exec.Execute(ctx, env); err != nil {
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Run consumes until ctx is done, reconnecting whenever the broker closes the
// connection.
func (c *Consumer) Run(ctx context.Context, conn *Connection) error {
	for {
		deliveries, err := conn.Consume()
		if err != nil {
			c.log.WithError(err).Warn("consume failed")
			if err := conn.Reconnect(ctx); err != nil {
				return nil
			}
			continue
		}
		c.log.Info("waiting for notification tasks")
		if done := c.drain(ctx, deliveries, conn.NotifyClosed()); done {
			return nil
		}
		c.log.Warn("rabbitmq connection lost, reconnecting")
		if err := conn.Reconnect(ctx); err != nil {
			return nil
		}
	}
}

func (c *Consumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery, closed <-chan *amqp.Error) bool {
	for {
		select {
		case <-ctx.Done():
			return true
		case <-closed:
			return false
		case d, ok := <-deliveries:
			if !ok {
				return ctx.Err() != nil
			}
			c.Handle(ctx, d)
		}
	}
}
