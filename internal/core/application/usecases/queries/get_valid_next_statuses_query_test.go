package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetValidNextStatusesQuery_Valid(t *testing.T) {
	query, err := queries.NewGetValidNextStatusesQuery(order.Pending)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Pending, query.Status())
}

func TestNewGetValidNextStatusesQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetValidNextStatusesQuery(order.Unknown)
	require.Error(t, err)
}

func TestGetValidNextStatusesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetValidNextStatusesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetValidNextStatusesQueryIsNotConstructed)
}

func TestGetValidNextStatusesQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetValidNextStatusesQueryHandler()

	t.Run("should return the transition table row", func(t *testing.T) {
		query, _ := queries.NewGetValidNextStatusesQuery(order.Pending)

		response, err := handler.Handle(query)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, response.Current)
		assert.Equal(t, order.Pending.ValidNextStatuses(), response.Next)
	})

	t.Run("should return empty destinations for terminal statuses", func(t *testing.T) {
		query, _ := queries.NewGetValidNextStatusesQuery(order.Delivered)

		response, err := handler.Handle(query)

		require.NoError(t, err)
		assert.Empty(t, response.Next)
	})

	t.Run("should fail for an unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(queries.GetValidNextStatusesQuery{})

		require.Error(t, err)
	})
}
