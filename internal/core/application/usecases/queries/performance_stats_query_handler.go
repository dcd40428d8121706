package queries

import (
	"context"
	"math"

	"gorm.io/gorm"

	"deliverysys/internal/core/domain/model/order"
)

// PerformanceStatsQueryHandler computes per-courier delivery figures straight
// from the database. Orders are attributed to the window by their last update
// time, so a delivery completed inside the window counts even if it was
// created before it.
type PerformanceStatsQueryHandler struct {
	db *gorm.DB
}

// NewPerformanceStatsQueryHandler creates a handler for performance reports.
func NewPerformanceStatsQueryHandler(db *gorm.DB) PerformanceStatsQueryHandler {
	return PerformanceStatsQueryHandler{db: db}
}

// Handle computes the report for the queried courier and window.
func (h PerformanceStatsQueryHandler) Handle(
	ctx context.Context,
	query PerformanceStatsQuery,
) (PerformanceStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return PerformanceStatsResponse{}, err
	}

	resp := PerformanceStatsResponse{
		CourierID: query.CourierID(),
		From:      query.From(),
		To:        query.To(),
	}

	courierID := query.CourierID().String()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(cod) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE assigned_to = ?
		  AND updated_at >= ?
		  AND updated_at <= ?
	`, order.StatusDone.String(), order.StatusDone.String(), courierID, query.From(), query.To()).Row()

	if err := row.Scan(&resp.TotalOrders, &resp.DoneOrders, &resp.CODCollected); err != nil {
		return PerformanceStatsResponse{}, err
	}

	var workedSeconds float64

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM COALESCE(check_out, ?) - check_in)), 0)
		FROM attendances
		WHERE courier_id = ?
	`, query.To(), courierID).Row()

	if err := row.Scan(&workedSeconds); err != nil {
		return PerformanceStatsResponse{}, err
	}

	resp.WorkedHours = round2(workedSeconds / 3600)

	if resp.WorkedHours > 0 {
		oph := round2(float64(resp.DoneOrders) / resp.WorkedHours)
		resp.OrdersPerHour = &oph
	}

	return resp, nil
}

// round2 mirrors the rounding attendance.Shift applies to Hours, so report
// figures and shift views agree to the cent of an hour.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
