package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

const orderColumns = `
	id,
	code,
	customer_name,
	address,
	pickup_address,
	pickup_lat,
	pickup_lng,
	drop_address,
	drop_lat,
	drop_lng,
	phone,
	cod,
	status,
	created_by,
	created_by_username,
	assigned_to,
	assigned_to_username,
	created_at,
	updated_at`

type orderRow struct {
	id                 uuid.UUID
	code               string
	customerName       string
	address            sql.NullString
	pickupAddress      sql.NullString
	pickupLat          sql.NullFloat64
	pickupLng          sql.NullFloat64
	dropAddress        sql.NullString
	dropLat            sql.NullFloat64
	dropLng            sql.NullFloat64
	phone              sql.NullString
	cod                int64
	status             string
	createdBy          uuid.UUID
	createdByUsername  string
	assignedTo         uuid.NullUUID
	assignedToUsername sql.NullString
	createdAt          time.Time
	updatedAt          time.Time
}

func (r *orderRow) scan(scanner interface{ Scan(dest ...any) error }) error {
	return scanner.Scan(
		&r.id,
		&r.code,
		&r.customerName,
		&r.address,
		&r.pickupAddress,
		&r.pickupLat,
		&r.pickupLng,
		&r.dropAddress,
		&r.dropLat,
		&r.dropLng,
		&r.phone,
		&r.cod,
		&r.status,
		&r.createdBy,
		&r.createdByUsername,
		&r.assignedTo,
		&r.assignedToUsername,
		&r.createdAt,
		&r.updatedAt,
	)
}

func (r *orderRow) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return nil, err
	}

	creatorID, err := kernel.UUIDFromBytes(r.createdBy[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.NewUserRef(creatorID, r.createdByUsername)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UserRef
	if r.assignedTo.Valid {
		assigneeID, idErr := kernel.UUIDFromBytes(r.assignedTo.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		ref, refErr := kernel.NewUserRef(assigneeID, r.assignedToUsername.String)
		if refErr != nil {
			return nil, refErr
		}
		assignedTo = &ref
	}

	status, err := order.StatusFromString(r.status)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName:  r.customerName,
		Address:       r.address.String,
		PickupAddress: r.pickupAddress.String,
		DropAddress:   r.dropAddress.String,
		Phone:         r.phone.String,
		COD:           r.cod,
	}

	if details.PickupPoint, err = pointFrom(r.pickupLat, r.pickupLng); err != nil {
		return nil, err
	}
	if details.DropPoint, err = pointFrom(r.dropLat, r.dropLng); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, r.code, details, status, createdBy, assignedTo, r.createdAt, r.updatedAt)
}

func pointFrom(lat sql.NullFloat64, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lng.Valid {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func fetchOrderByID(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (*order.Order, error) {
	return fetchOrder(ctx, db, "id = ?", orderID.String())
}

func fetchOrderByCode(ctx context.Context, db *gorm.DB, code string) (*order.Order, error) {
	return fetchOrder(ctx, db, "code = ?", code)
}

func fetchOrder(ctx context.Context, db *gorm.DB, where string, arg string) (*order.Order, error) {
	row := db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE `+where, arg,
	).Row()

	var r orderRow
	if err := r.scan(row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", arg)
		}
		return nil, err
	}

	return r.toDomain()
}
