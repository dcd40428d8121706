package ports

import (
	"context"

	"deliverysys/internal/core/domain/model/kernel"
)

// LineString is a GeoJSON LineString: an ordered [lng, lat] coordinate
// sequence tracing the path from pickup to drop.
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Route is the normalized result of a routing provider call.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        LineString
}

// RouteClient resolves driving routes through an external routing provider.
// Each call is a fresh synchronous upstream request with a bounded timeout;
// results are never cached or retried. Provider-level failures, timeouts and
// connection errors surface as UpstreamError.
type RouteClient interface {
	GetRoute(ctx context.Context, pickup kernel.GeoPoint, drop kernel.GeoPoint) (*Route, error)
}
