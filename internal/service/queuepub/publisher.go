// Package queuepub publishes complaint domain events to RabbitMQ. Publish
// failures are logged and returned so callers can ignore them: the HTTP
// request that triggered the event must never fail because the broker is
// down.
package queuepub

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/civicdesk/complaint-portal/internal/queue"
)

const eventsQueueName = "complaint.events"

// Publisher writes ComplaintEvents to the complaint.events queue. A fresh
// connection per publish keeps the publisher stateless; event volume here
// is one message per assignment action.
type Publisher struct {
	URL string
	Log zerolog.Logger
}

func New(log zerolog.Logger) *Publisher {
	return &Publisher{URL: queue.BrokerURL(), Log: log}
}

// Publish sends one event, declaring the durable queue on the way so the
// first publish works on a fresh broker.
func (p *Publisher) Publish(ctx context.Context, ev queue.ComplaintEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.Warn().Err(err).Str("event", ev.Type).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(eventsQueueName, true, false, false, false, nil); err != nil {
		p.Log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		p.Log.Warn().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", eventsQueueName, false, false, pub); err != nil {
		p.Log.Warn().Err(err).Str("event", ev.Type).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
