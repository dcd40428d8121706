package order_test

import (
	"testing"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUserRef(t *testing.T, username string) kernel.UserRef {
	t.Helper()
	ref, err := kernel.NewUserRef(kernel.NewUUID(), username)
	require.NoError(t, err)
	return ref
}

func mustPrincipal(t *testing.T, username string, isAdmin bool) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), username, isAdmin)
	require.NoError(t, err)
	return p
}

func geoPtr(t *testing.T, lat, lng float64) *kernel.GeoPoint {
	t.Helper()
	pt, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return &pt
}

func validDetails(t *testing.T) order.Details {
	t.Helper()
	return order.Details{
		CustomerName:  "Nguyen Van A",
		Address:       "12 Ly Thuong Kiet",
		PickupAddress: "Warehouse 3",
		PickupPoint:   geoPtr(t, 10.776, 106.701),
		DropAddress:   "12 Ly Thuong Kiet",
		DropPoint:     geoPtr(t, 10.801, 106.650),
		Phone:         "0901234567",
		COD:           150000,
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_new_status", func(t *testing.T) {
		creator := mustUserRef(t, "dispatcher")

		o, err := order.NewOrder(kernel.NewUUID(), "DH-001", validDetails(t), creator, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusNew, o.Status())
		assert.Equal(t, "DH-001", o.Code())
		assert.Equal(t, int64(150000), o.Details().COD)
	})

	t.Run("assignee_defaults_to_creator", func(t *testing.T) {
		creator := mustUserRef(t, "dispatcher")

		o, err := order.NewOrder(kernel.NewUUID(), "DH-002", validDetails(t), creator, nil)

		require.NoError(t, err)
		require.NotNil(t, o.AssignedTo())
		assert.True(t, o.AssignedTo().IsEqual(creator))
	})

	t.Run("explicit_assignee_is_kept", func(t *testing.T) {
		creator := mustUserRef(t, "dispatcher")
		courier := mustUserRef(t, "courier1")

		o, err := order.NewOrder(kernel.NewUUID(), "DH-003", validDetails(t), creator, &courier)

		require.NoError(t, err)
		assert.True(t, o.AssignedTo().IsEqual(courier))
	})

	t.Run("accepts_zero_cod", func(t *testing.T) {
		details := validDetails(t)
		details.COD = 0

		o, err := order.NewOrder(kernel.NewUUID(), "DH-004", details, mustUserRef(t, "dispatcher"), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.Details().COD)
	})

	t.Run("rejects_negative_cod", func(t *testing.T) {
		details := validDetails(t)
		details.COD = -1

		_, err := order.NewOrder(kernel.NewUUID(), "DH-005", details, mustUserRef(t, "dispatcher"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cod")
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", validDetails(t), mustUserRef(t, "dispatcher"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_customer_name", func(t *testing.T) {
		details := validDetails(t)
		details.CustomerName = ""

		_, err := order.NewOrder(kernel.NewUUID(), "DH-006", details, mustUserRef(t, "dispatcher"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Coordinates(t *testing.T) {
	t.Run("fully_geocoded_order_has_coordinates", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "DH-010", validDetails(t), mustUserRef(t, "dispatcher"), nil)
		require.NoError(t, err)

		assert.True(t, o.HasCoordinates())

		pickup, drop, err := o.RouteEndpoints()
		require.NoError(t, err)
		assert.InDelta(t, 10.776, pickup.Lat(), 1e-9)
		assert.InDelta(t, 106.650, drop.Lng(), 1e-9)
	})

	t.Run("missing_drop_point_blocks_route", func(t *testing.T) {
		details := validDetails(t)
		details.DropPoint = nil

		o, err := order.NewOrder(kernel.NewUUID(), "DH-011", details, mustUserRef(t, "dispatcher"), nil)
		require.NoError(t, err)

		assert.False(t, o.HasCoordinates())

		_, _, err = o.RouteEndpoints()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "DH-020", validDetails(t), mustUserRef(t, "dispatcher"), nil)
	require.NoError(t, err)

	t.Run("any_transition_within_the_set_is_allowed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusShipping,
			order.StatusDone,
			order.StatusCancel,
			order.StatusDone, // cancel -> done is deliberately not blocked
			order.StatusNew,
		} {
			require.NoError(t, o.ChangeStatus(s))
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("rejects_value_outside_the_set", func(t *testing.T) {
		err := o.ChangeStatus(order.Status("archived"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignUnassign(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "DH-030", validDetails(t), mustUserRef(t, "dispatcher"), nil)
	require.NoError(t, err)

	courier := mustUserRef(t, "courier1")
	require.NoError(t, o.Assign(courier))
	assert.True(t, o.AssignedTo().IsEqual(courier))

	o.Unassign()
	assert.Nil(t, o.AssignedTo())
}

func TestOrder_ViewableBy(t *testing.T) {
	creatorPrincipal := mustPrincipal(t, "dispatcher", false)
	courierPrincipal := mustPrincipal(t, "courier1", false)
	adminPrincipal := mustPrincipal(t, "boss", true)
	strangerPrincipal := mustPrincipal(t, "stranger", false)

	courierRef := courierPrincipal.Ref()
	o, err := order.NewOrder(kernel.NewUUID(), "DH-040", validDetails(t), creatorPrincipal.Ref(), &courierRef)
	require.NoError(t, err)

	assert.True(t, o.ViewableBy(adminPrincipal))
	assert.True(t, o.ViewableBy(courierPrincipal))
	assert.True(t, o.ViewableBy(creatorPrincipal))
	assert.False(t, o.ViewableBy(strangerPrincipal))

	assert.True(t, o.IsAssignedTo(courierPrincipal))
	assert.False(t, o.IsAssignedTo(creatorPrincipal))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rehydrates_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()
		creator := mustUserRef(t, "dispatcher")
		createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(2 * time.Hour)

		o, err := order.RestoreOrder(id, "DH-050", validDetails(t),
			order.StatusShipping, creator, nil, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipping, o.Status())
		assert.Nil(t, o.AssignedTo(), "restore must not default the assignee")
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("rejects_corrupt_status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "DH-051", validDetails(t),
			order.Status("???"), mustUserRef(t, "dispatcher"), nil, time.Now(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
