package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderMetricsQueryHandler derives lifecycle metrics for one order from
// its persisted status history.
//
// Example:
//
//	handler := NewGetOrderMetricsQueryHandler(db)
//	query, _ := NewGetOrderMetricsQuery(orderID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get metrics: %v", err)
//	    return err
//	}
type GetOrderMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderMetricsQueryHandler creates a handler for order metrics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderMetricsQueryHandler(db *gorm.DB) GetOrderMetricsQueryHandler {
	return GetOrderMetricsQueryHandler{db: db}
}

// historyRecord mirrors one persisted status change for JSON decoding.
type historyRecord struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// Handle executes the metrics query.
// Loads the order's status and history, reconstructs the aggregate, and
// derives the metrics. Returns an object-not-found error for unknown orders.
func (h GetOrderMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMetricsQuery,
) (GetOrderMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	var (
		statusLabel string
		historyRaw  []byte
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			history
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	if err := row.Scan(&statusLabel, &historyRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderMetricsQueryResponse{},
				errs.NewObjectNotFoundErrorWithCause("order id", query.OrderID(), err)
		}
		return GetOrderMetricsQueryResponse{}, err
	}

	status, err := order.StatusFromString(statusLabel)
	if err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	var records []historyRecord
	if err = json.Unmarshal(historyRaw, &records); err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	history := make([]order.Transition, 0, len(records))
	for _, record := range records {
		transition, convErr := record.toTransition()
		if convErr != nil {
			return GetOrderMetricsQueryResponse{}, convErr
		}
		history = append(history, transition)
	}

	aggregate, err := order.RestoreOrder(
		query.OrderID(), status, history, "", "", "", nil, nil,
	)
	if err != nil {
		return GetOrderMetricsQueryResponse{}, err
	}

	return GetOrderMetricsQueryResponse{
		OrderID: query.OrderID(),
		Status:  status,
		Metrics: aggregate.CalculateMetrics(),
	}, nil
}

func (r historyRecord) toTransition() (order.Transition, error) {
	from, err := statusFromLabel(r.From)
	if err != nil {
		return order.Transition{}, err
	}
	to, err := statusFromLabel(r.To)
	if err != nil {
		return order.Transition{}, err
	}

	return order.Transition{
		From:      from,
		To:        to,
		Timestamp: r.Timestamp,
		User:      r.User,
		Reason:    r.Reason,
		Notes:     r.Notes,
	}, nil
}

// statusFromLabel parses a persisted status label. The creation record's
// source is the Unknown sentinel, which StatusFromString deliberately
// rejects, so it is special-cased here.
func statusFromLabel(label string) (order.Status, error) {
	if label == order.Unknown.String() {
		return order.Unknown, nil
	}
	return order.StatusFromString(label)
}
