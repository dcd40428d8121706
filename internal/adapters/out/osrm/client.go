// Package osrm is the routing adapter for an OSRM-compatible HTTP service.
// It asks the driving profile for the full route geometry and normalizes the
// answer into the routing port's types.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/ports"
	"deliverysys/internal/pkg/errs"
)

// DefaultBaseURL is the public OSRM demo server.
const DefaultBaseURL = "https://router.project-osrm.org"

const requestTimeout = 10 * time.Second

// Client implements ports.RouteClient against an OSRM HTTP endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an OSRM route client. An empty baseURL falls back to the
// public demo server.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With(slog.String("component", "osrm_client")),
	}
}

// osrmResponse mirrors the slice of the OSRM answer we care about.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
		Geometry ports.LineString `json:"geometry"`
	} `json:"routes"`
}

// GetRoute requests the driving route from pickup to drop. OSRM expects
// coordinates in lng,lat order.
func (c *Client) GetRoute(ctx context.Context, pickup kernel.GeoPoint, drop kernel.GeoPoint) (*ports.Route, error) {
	url := fmt.Sprintf(
		"%s/route/v1/driving/%g,%g;%g,%g?overview=full&geometries=geojson",
		c.baseURL,
		pickup.Lng(), pickup.Lat(),
		drop.Lng(), drop.Lat(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewUpstreamErrorWithCause("building route request failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("route request failed", slog.String("error", err.Error()))
		return nil, errs.NewUpstreamErrorWithCause("routing service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUpstreamErrorWithCause("reading route response failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("routing service returned error status",
			slog.Int("status", resp.StatusCode))
		return nil, errs.NewUpstreamError(
			fmt.Sprintf("routing service returned status %d", resp.StatusCode), body)
	}

	var parsed osrmResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.NewUpstreamError("routing service returned malformed payload", body)
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		c.logger.Warn("routing service could not route",
			slog.String("code", parsed.Code))
		return nil, errs.NewUpstreamError("routing service could not compute a route", body)
	}

	best := parsed.Routes[0]

	return &ports.Route{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        best.Geometry,
	}, nil
}
