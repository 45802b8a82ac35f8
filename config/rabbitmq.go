package config

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(cfg *Config) (*amqp.Connection, error) {
	// Name the connection so it is identifiable in the broker's
	// management UI next to the event_listener consumers.
	props := amqp.NewConnectionProperties()
	props.SetClientConnectionName("safehaven-server")

	conn, err := amqp.DialConfig(cfg.RabbitMQURL, amqp.Config{Properties: props})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	return conn, nil
}
