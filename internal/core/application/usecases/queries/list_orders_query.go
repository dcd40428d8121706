package queries

import (
	"errors"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery
// was not created via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter narrows the order listing. Zero values mean no filtering.
type ListOrdersFilter struct {
	// Status keeps only orders in the given lifecycle state.
	Status *order.Status

	// AssignedTo keeps only orders assigned to the given user.
	AssignedTo *kernel.UUID

	// Search matches case-insensitively against code, customer name, phone,
	// delivery address and assignee username.
	Search string

	// Sort is a comma-separated list of fields, each optionally prefixed
	// with '-' for descending order. Unknown fields are rejected.
	Sort string
}

// ListOrdersQuery retrieves orders visible to the requesting principal.
// Administrators see everything; other principals see only orders they
// created or are assigned to.
type ListOrdersQuery struct {
	principal kernel.Principal
	filter    ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a scoped order listing query.
func NewListOrdersQuery(principal kernel.Principal, filter ListOrdersFilter) (ListOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		principal: principal,
		filter:    filter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q ListOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

// Filter returns the listing filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}
