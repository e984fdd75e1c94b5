package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// StatusChangeChannel is the Pub/Sub channel carrying order status change
// notifications.
const StatusChangeChannel = "order-status-changed"

// StatusChangeMessage is the JSON payload published for one status change.
type StatusChangeMessage struct {
	OrderID   string `json:"order_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp int64  `json:"timestamp"`
}

// NotificationPublisher pushes order status change notifications over Redis
// Pub/Sub. Publishing is best effort: failures are logged and swallowed so a
// broker outage never blocks order processing.
type NotificationPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewNotificationPublisher creates a publisher and verifies connectivity.
func NewNotificationPublisher(addr, password string, db int, logger *slog.Logger) (*NotificationPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &NotificationPublisher{client: client, logger: logger}, nil
}

// PublishStatusChange announces that an order moved to a new status.
func (p *NotificationPublisher) PublishStatusChange(
	ctx context.Context,
	orderID kernel.UUID,
	from order.Status,
	to order.Status,
) {
	message := StatusChangeMessage{
		OrderID:   orderID.String(),
		From:      from.String(),
		To:        to.String(),
		Timestamp: time.Now().Unix(),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal status change notification",
			"order_id", orderID.String(), "error", err)
		return
	}

	if err := p.client.Publish(ctx, StatusChangeChannel, payload).Err(); err != nil {
		p.logger.WarnContext(ctx, "failed to publish status change notification",
			"order_id", orderID.String(), "to", to.String(), "error", err)
	}
}

// Close closes the underlying Redis connection.
func (p *NotificationPublisher) Close() error {
	return p.client.Close()
}
