package rabbitmq

import (
	"context"
	"fmt"
	"maps"
	"net"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/theabdulsaboor/Vercel-Shopify-App/config"
)

// PublishMessage publishes one persistent JSON message to the configured
// exchange. One connection per publish: invocations are short-lived and
// share nothing.
func PublishMessage(ctx context.Context, cfg config.RabbitMQConfig, routingKey string, body []byte, headers amqp.Table) error {
	if !cfg.Enabled() {
		return fmt.Errorf("invalid or incomplete RabbitMQ configuration")
	}

	rUrl := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Host)
	amqpConfig := amqp.Config{
		Dial: func(network, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, addr)
		},
	}
	conn, err := amqp.DialConfig(rUrl, amqpConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ:\n>>> %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open a channel to RabbitMQ:\n>>> %w", err)
	}
	defer ch.Close()

	allHeaders := amqp.Table{}
	maps.Copy(allHeaders, headers)

	err = ch.PublishWithContext(ctx, cfg.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers:      allHeaders,
	})
	if err != nil {
		return fmt.Errorf("failed to publish a message to RabbitMQ:\n>>> %w", err)
	}

	return nil
}
