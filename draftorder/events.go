package draftorder

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/theabdulsaboor/Vercel-Shopify-App/rabbitmq"
)

// publishCreated emits a draft_order.created event when RabbitMQ is
// configured. Publication is best-effort: a failure is logged and never
// fails the storefront request.
func (h *Handler) publishCreated(ctx context.Context, mode string, draftOrderId any, invoiceUrl string, itemCount int) {
	if !h.Config.RabbitMQ.Enabled() {
		return
	}

	body, err := json.Marshal(map[string]any{
		"draftOrderId": draftOrderId,
		"invoiceUrl":   invoiceUrl,
		"itemCount":    itemCount,
		"mode":         mode,
	})
	if err != nil {
		h.Log.Warn(ctx, "could not marshal draft order event", err)
		return
	}

	err = rabbitmq.PublishMessage(ctx, h.Config.RabbitMQ, "draft_order.created", body, amqp.Table{
		"X-Draft-Order-Mode": mode,
	})
	if err != nil {
		h.Log.Warn(ctx, "could not publish draft order event", err)
	}
}
