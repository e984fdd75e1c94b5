// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status history and metadata are stored as JSONB documents alongside the
// scalar columns, with an index on status for workflow queries.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status       string    `gorm:"type:varchar(32);index"`
	Carrier      string
	AWB          string `gorm:"column:awb"`
	RTOReason    string `gorm:"column:rto_reason"`
	DeliveryDate *time.Time
	Metadata     []byte `gorm:"type:jsonb"`
	History      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// transitionDTO mirrors one status change record in the history document.
type transitionDTO struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// fromDomain converts an order domain aggregate to its database
// representation. Statuses are persisted by label so the stored documents
// stay readable and stable across enum reordering.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	history := aggregate.History()
	records := make([]transitionDTO, 0, len(history))
	for _, t := range history {
		records = append(records, transitionDTO{
			From:      t.From.String(),
			To:        t.To.String(),
			Timestamp: t.Timestamp,
			User:      t.User,
			Reason:    t.Reason,
			Notes:     t.Notes,
		})
	}

	historyRaw, err := json.Marshal(records)
	if err != nil {
		return OrderDTO{}, err
	}

	var metadataRaw []byte
	if aggregate.Metadata() != nil {
		metadataRaw, err = json.Marshal(aggregate.Metadata())
		if err != nil {
			return OrderDTO{}, err
		}
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Status:       aggregate.Status().String(),
		Carrier:      aggregate.Carrier(),
		AWB:          aggregate.AWB(),
		RTOReason:    aggregate.RTOReason(),
		DeliveryDate: aggregate.DeliveryDate(),
		Metadata:     metadataRaw,
		History:      historyRaw,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var records []transitionDTO
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &records); err != nil {
			return nil, err
		}
	}

	history := make([]order.Transition, 0, len(records))
	for _, record := range records {
		transition, convErr := record.toDomain()
		if convErr != nil {
			return nil, convErr
		}
		history = append(history, transition)
	}

	var metadata map[string]string
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, status, history,
		dto.Carrier, dto.AWB, dto.RTOReason, dto.DeliveryDate, metadata,
	)
}

func (r transitionDTO) toDomain() (order.Transition, error) {
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
