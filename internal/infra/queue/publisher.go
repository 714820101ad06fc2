package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys for booking lifecycle notifications.
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
	KeyEventBooked      = "event.booked"
	KeyEventCancelled   = "event.cancelled"
	KeyOrderPlaced      = "order.placed"
)

// Publisher emits notifications to a topic exchange. Delivery is best
// effort: bookings are already committed when publishing happens, so a
// failed publish is logged and swallowed.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) (*Publisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial amqp")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare exchange")
	}

	p := &Publisher{conn: conn, channel: ch, exchange: cfg.Exchange, logger: logger}
	cleanup := func() {
		p.channel.Close()
		p.conn.Close()
	}
	return p, cleanup, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal notification", "routing_key", routingKey, "error", err)
		return
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish notification", "routing_key", routingKey, "error", err)
		return
	}

	p.logger.Debug("notification published", "exchange", p.exchange, "routing_key", routingKey)
}
