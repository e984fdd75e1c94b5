// Package redis provides Redis-backed adapters for carrier performance
// history and order status change notifications.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	// historyTTL bounds how long a zone's performance history stays relevant.
	// Stale lanes age out and carriers restart from the reliability prior.
	historyTTL = 90 * 24 * time.Hour

	// maxUpdateAttempts bounds optimistic retries on concurrent history updates.
	maxUpdateAttempts = 5
)

// PerformanceStore persists per-zone carrier performance history in Redis.
// Each zone maps to one JSON document under "carrier-history:<zone>".
type PerformanceStore struct {
	client *redis.Client
}

// NewPerformanceStore creates a performance store and verifies connectivity.
func NewPerformanceStore(addr, password string, db int) (*PerformanceStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return &PerformanceStore{client: client}, nil
}

// ZoneHistory loads the performance history for one zone.
// A missing key yields an empty history. Connection failures are reported
// as ErrStoreUnavailable so callers can degrade to prior-based scoring.
func (s *PerformanceStore) ZoneHistory(ctx context.Context, zone kernel.Zone) (carrier.ZoneHistory, error) {
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.client.Get(ctx, zoneKey(zone)).Bytes()
	if errors.Is(err, redis.Nil) {
		return carrier.ZoneHistory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return decodeHistory(payload)
}

// UpdateZoneHistory applies mutate to one zone's history under optimistic
// concurrency control. The document is watched, mutated, and written back in
// a transaction; conflicting writers trigger a bounded retry. Every write
// refreshes the document's TTL.
func (s *PerformanceStore) UpdateZoneHistory(
	ctx context.Context,
	zone kernel.Zone,
	mutate func(history carrier.ZoneHistory),
) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	key := zoneKey(zone)
	txn := func(tx *redis.Tx) error {
		history := carrier.ZoneHistory{}
		payload, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
		default:
			if history, err = decodeHistory(payload); err != nil {
				return err
			}
		}

		mutate(history)

		updated, err := json.Marshal(history)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, historyTTL)
			return nil
		})
		return err
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("update of %s lost %d races in a row", key, maxUpdateAttempts)
}

// Close closes the underlying Redis connection.
func (s *PerformanceStore) Close() error {
	return s.client.Close()
}

func zoneKey(zone kernel.Zone) string {
	return "carrier-history:" + zone.String()
}

func decodeHistory(payload []byte) (carrier.ZoneHistory, error) {
	var history carrier.ZoneHistory
	if err := json.Unmarshal(payload, &history); err != nil {
		return nil, fmt.Errorf("failed to decode performance history: %w", err)
	}
	if history == nil {
		history = carrier.ZoneHistory{}
	}
	return history, nil
}
