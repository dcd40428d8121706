package queries

import (
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
)

// OrderView is the read-side projection of a delivery order.
type OrderView struct {
	ID                 kernel.UUID
	Code               string
	CustomerName       string
	Address            string
	PickupAddress      string
	PickupPoint        *kernel.GeoPoint
	DropAddress        string
	DropPoint          *kernel.GeoPoint
	Phone              string
	COD                int64
	Status             order.Status
	CreatedByID        kernel.UUID
	CreatedByUsername  string
	AssignedToID       *kernel.UUID
	AssignedToUsername string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func orderViewFrom(o *order.Order) OrderView {
	details := o.Details()
	createdBy := o.CreatedBy()

	view := OrderView{
		ID:                o.ID(),
		Code:              o.Code(),
		CustomerName:      details.CustomerName,
		Address:           details.Address,
		PickupAddress:     details.PickupAddress,
		PickupPoint:       details.PickupPoint,
		DropAddress:       details.DropAddress,
		DropPoint:         details.DropPoint,
		Phone:             details.Phone,
		COD:               details.COD,
		Status:            o.Status(),
		CreatedByID:       createdBy.ID(),
		CreatedByUsername: createdBy.Username(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}

	if assignee := o.AssignedTo(); assignee != nil {
		id := assignee.ID()
		view.AssignedToID = &id
		view.AssignedToUsername = assignee.Username()
	}

	return view
}
