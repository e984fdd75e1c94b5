package queries

// GetValidNextStatusesQueryHandler answers permitted-destination queries
// straight from the transition table. No storage access is involved.
type GetValidNextStatusesQueryHandler struct{}

// NewGetValidNextStatusesQueryHandler creates a handler for
// permitted-destination queries.
func NewGetValidNextStatusesQueryHandler() GetValidNextStatusesQueryHandler {
	return GetValidNextStatusesQueryHandler{}
}

// Handle executes the query against the transition table.
func (h GetValidNextStatusesQueryHandler) Handle(
	query GetValidNextStatusesQuery,
) (GetValidNextStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetValidNextStatusesQueryResponse{}, err
	}

	return GetValidNextStatusesQueryResponse{
		Current: query.Status(),
		Next:    query.Status().ValidNextStatuses(),
	}, nil
}
