// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The creator and assignee usernames are denormalized onto the row so that
// listings and search never need a join against an account store.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code               string    `gorm:"uniqueIndex"`
	CustomerName       string
	Address            string
	PickupAddress      string
	PickupLat          *float64
	PickupLng          *float64
	DropAddress        string
	DropLat            *float64
	DropLng            *float64
	Phone              string
	COD                int64     `gorm:"column:cod"`
	Status             string    `gorm:"index"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;index"`
	CreatedByUsername  string
	AssignedTo         *uuid.UUID `gorm:"type:uuid;index"`
	AssignedToUsername string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()
	createdBy := aggregate.CreatedBy()

	dto := OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Code:              aggregate.Code(),
		CustomerName:      details.CustomerName,
		Address:           details.Address,
		PickupAddress:     details.PickupAddress,
		DropAddress:       details.DropAddress,
		Phone:             details.Phone,
		COD:               details.COD,
		Status:            aggregate.Status().String(),
		CreatedBy:         createdBy.ID().Bytes(),
		CreatedByUsername: createdBy.Username(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}

	if point := details.PickupPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.PickupLat, dto.PickupLng = &lat, &lng
	}
	if point := details.DropPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.DropLat, dto.DropLng = &lat, &lng
	}

	if assignee := aggregate.AssignedTo(); assignee != nil {
		raw := assignee.ID().Bytes()
		dto.AssignedTo = &raw
		dto.AssignedToUsername = assignee.Username()
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	creatorID, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.NewUserRef(creatorID, dto.CreatedByUsername)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UserRef
	if dto.AssignedTo != nil {
		assigneeID, assigneeErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}

		ref, refErr := kernel.NewUserRef(assigneeID, dto.AssignedToUsername)
		if refErr != nil {
			return nil, refErr
		}
		assignedTo = &ref
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName:  dto.CustomerName,
		Address:       dto.Address,
		PickupAddress: dto.PickupAddress,
		DropAddress:   dto.DropAddress,
		Phone:         dto.Phone,
		COD:           dto.COD,
	}

	if details.PickupPoint, err = pointFrom(dto.PickupLat, dto.PickupLng); err != nil {
		return nil, err
	}
	if details.DropPoint, err = pointFrom(dto.DropLat, dto.DropLng); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Code, details, status, createdBy, assignedTo, dto.CreatedAt, dto.UpdatedAt)
}

func pointFrom(lat *float64, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
