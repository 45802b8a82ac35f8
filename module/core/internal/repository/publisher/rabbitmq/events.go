package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Aravinth1228/safehaven/module/core/domain"
	"github.com/Aravinth1228/safehaven/module/core/internal/repository/publisher"
)

var _ publisher.EventPublisher = (*EventPublisher)(nil)

const (
	exchangeName = "safehaven.events"
	queueName    = "safety_events"
)

type EventPublisher struct {
	ch *amqp.Channel
}

func NewEventPublisher(conn *amqp.Connection) (*EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &EventPublisher{ch: ch}, nil
}

type eventLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type transitionMessage struct {
	Type      string                `json:"type"`
	TouristID string                `json:"tourist_id"`
	ZoneID    string                `json:"zone_id"`
	ZoneName  string                `json:"zone_name"`
	Event     domain.TransitionKind `json:"event"`
	Severity  domain.Severity       `json:"severity"`
	Location  eventLocation         `json:"location"`
	Timestamp int64                 `json:"timestamp"`
}

type alertMessage struct {
	Type      string             `json:"type"`
	TouristID string             `json:"tourist_id"`
	Reason    domain.AlertReason `json:"reason"`
	ZoneID    string             `json:"zone_id,omitempty"`
	ZoneName  string             `json:"zone_name,omitempty"`
	Severity  domain.Severity    `json:"severity,omitempty"`
	Location  eventLocation      `json:"location"`
	Timestamp int64              `json:"timestamp"`
}

func (p *EventPublisher) PublishTransition(ctx context.Context, t *domain.Transition) error {
	msg := transitionMessage{
		Type:      "transition",
		TouristID: t.TouristID,
		ZoneID:    t.ZoneID,
		ZoneName:  t.ZoneName,
		Event:     t.Kind,
		Severity:  t.Severity,
		Location: eventLocation{
			Latitude:  t.Location.Lat,
			Longitude: t.Location.Lon,
		},
		Timestamp: t.Timestamp,
	}
	return p.publish(ctx, msg)
}

func (p *EventPublisher) PublishAlert(ctx context.Context, a *domain.Alert) error {
	msg := alertMessage{
		Type:      "alert",
		TouristID: a.TouristID,
		Reason:    a.Reason,
		ZoneID:    a.ZoneID,
		ZoneName:  a.ZoneName,
		Severity:  a.Severity,
		Location: eventLocation{
			Latitude:  a.Location.Lat,
			Longitude: a.Location.Lon,
		},
		Timestamp: a.Timestamp,
	}
	return p.publish(ctx, msg)
}

func (p *EventPublisher) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
