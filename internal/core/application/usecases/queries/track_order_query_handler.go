package queries

import (
	"context"

	"gorm.io/gorm"

	"deliverysys/internal/pkg/errs"
)

// TrackOrderQueryHandler resolves an order code to its progress summary.
// Tracking obeys the same visibility rules as direct lookups.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle fetches the order by code and builds the tracking summary.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	found, err := fetchOrderByCode(ctx, h.db, query.Code())
	if err != nil {
		return TrackOrderResponse{}, err
	}

	if !found.ViewableBy(query.Principal()) {
		return TrackOrderResponse{}, errs.NewForbiddenError("order is not visible to this user")
	}

	resp := TrackOrderResponse{
		Code:         found.Code(),
		Status:       found.Status(),
		CustomerName: found.Details().CustomerName,
		UpdatedAt:    found.UpdatedAt(),
	}

	if assignee := found.AssignedTo(); assignee != nil {
		resp.AssignedToUsername = assignee.Username()
	}

	return resp, nil
}
