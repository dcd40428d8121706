package kernel

import (
	"errors"
	"fmt"

	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// WGS84 coordinate bounds.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use a GeoPoint
// that was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair in WGS84 coordinates.
// It marks a pickup or drop location on an order. The zero value is invalid;
// use NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating that latitude is within
// [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	pt := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pt.setLat(lat), pt.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return pt, nil
}

// Validate ensures the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%g is not within [%g, %g]", lat, LatitudeMin, LatitudeMax))
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%g is not within [%g, %g]", lng, LongitudeMin, LongitudeMax))
	}
	p.lng = lng
	return nil
}
