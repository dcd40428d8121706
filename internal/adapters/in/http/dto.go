package http

import (
	"time"

	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/application/usecases/queries"
	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/core/ports"
	"deliverysys/internal/pkg/errs"
)

type userRefPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type createOrderRequest struct {
	Code          string          `json:"code"`
	CustomerName  string          `json:"customer_name"`
	Address       string          `json:"address"`
	PickupAddress string          `json:"pickup_address"`
	PickupLat     *float64        `json:"pickup_lat"`
	PickupLng     *float64        `json:"pickup_lng"`
	DropAddress   string          `json:"drop_address"`
	DropLat       *float64        `json:"drop_lat"`
	DropLng       *float64        `json:"drop_lng"`
	Phone         string          `json:"phone"`
	COD           int64           `json:"cod"`
	AssignedTo    *userRefPayload `json:"assigned_to"`
}

type updateOrderRequest struct {
	CustomerName  *string         `json:"customer_name"`
	Address       *string         `json:"address"`
	PickupAddress *string         `json:"pickup_address"`
	PickupLat     *float64        `json:"pickup_lat"`
	PickupLng     *float64        `json:"pickup_lng"`
	DropAddress   *string         `json:"drop_address"`
	DropLat       *float64        `json:"drop_lat"`
	DropLng       *float64        `json:"drop_lng"`
	Phone         *string         `json:"phone"`
	COD           *int64          `json:"cod"`
	Status        *string         `json:"status"`
	AssignedTo    *userRefPayload `json:"assigned_to"`
}

type attendanceRequest struct {
	Action  string  `json:"action"`
	OrderID *string `json:"order_id"`
}

type orderResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	CustomerName       string    `json:"customer_name"`
	Address            string    `json:"address,omitempty"`
	PickupAddress      string    `json:"pickup_address,omitempty"`
	PickupLat          *float64  `json:"pickup_lat,omitempty"`
	PickupLng          *float64  `json:"pickup_lng,omitempty"`
	DropAddress        string    `json:"drop_address,omitempty"`
	DropLat            *float64  `json:"drop_lat,omitempty"`
	DropLng            *float64  `json:"drop_lng,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	COD                int64     `json:"cod"`
	Status             string    `json:"status"`
	CreatedByID        string    `json:"created_by_id"`
	CreatedByUsername  string    `json:"created_by_username"`
	AssignedToID       *string   `json:"assigned_to_id"`
	AssignedToUsername string    `json:"assigned_to_username,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type shiftResponse struct {
	ID       string     `json:"id"`
	OrderID  *string    `json:"order_id"`
	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Hours    *float64   `json:"hours"`
}

type trackResponse struct {
	Code               string    `json:"code"`
	Status             string    `json:"status"`
	CustomerName       string    `json:"customer_name"`
	AssignedToUsername string    `json:"assigned_to_username,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type routeResponse struct {
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds float64          `json:"duration_seconds"`
	Geometry        ports.LineString `json:"geometry"`
}

type performanceResponse struct {
	CourierID     string    `json:"courier_id"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	TotalOrders   int64     `json:"total_orders"`
	DoneOrders    int64     `json:"done_orders"`
	CODCollected  int64     `json:"cod_collected"`
	WorkedHours   float64   `json:"worked_hours"`
	OrdersPerHour *float64  `json:"orders_per_hour"`
}

// pointFromPair converts an optional lat/lng pair. Giving only one half of
// the pair is rejected rather than silently dropped.
func pointFromPair(name string, lat *float64, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsInvalidError(name + " coordinates: both lat and lng are required")
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func userRefFromPayload(payload *userRefPayload) (*kernel.UserRef, error) {
	if payload == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return nil, err
	}

	ref, err := kernel.NewUserRef(id, payload.Username)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func detailsFromRequest(req createOrderRequest) (order.Details, error) {
	pickup, err := pointFromPair("pickup", req.PickupLat, req.PickupLng)
	if err != nil {
		return order.Details{}, err
	}

	drop, err := pointFromPair("drop", req.DropLat, req.DropLng)
	if err != nil {
		return order.Details{}, err
	}

	return order.Details{
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		PickupAddress: req.PickupAddress,
		PickupPoint:   pickup,
		DropAddress:   req.DropAddress,
		DropPoint:     drop,
		Phone:         req.Phone,
		COD:           req.COD,
	}, nil
}

func patchFromRequest(req updateOrderRequest) (commands.OrderPatch, error) {
	patch := commands.OrderPatch{
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		PickupAddress: req.PickupAddress,
		DropAddress:   req.DropAddress,
		Phone:         req.Phone,
		COD:           req.COD,
	}

	var err error
	if patch.PickupPoint, err = pointFromPair("pickup", req.PickupLat, req.PickupLng); err != nil {
		return commands.OrderPatch{}, err
	}
	if patch.DropPoint, err = pointFromPair("drop", req.DropLat, req.DropLng); err != nil {
		return commands.OrderPatch{}, err
	}

	if req.Status != nil {
		status, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return commands.OrderPatch{}, statusErr
		}
		patch.Status = &status
	}

	if patch.AssignedTo, err = userRefFromPayload(req.AssignedTo); err != nil {
		return commands.OrderPatch{}, err
	}

	return patch, nil
}

func responseFromView(view queries.OrderView) orderResponse {
	resp := orderResponse{
		ID:                 view.ID.String(),
		Code:               view.Code,
		CustomerName:       view.CustomerName,
		Address:            view.Address,
		PickupAddress:      view.PickupAddress,
		DropAddress:        view.DropAddress,
		Phone:              view.Phone,
		COD:                view.COD,
		Status:             view.Status.String(),
		CreatedByID:        view.CreatedByID.String(),
		CreatedByUsername:  view.CreatedByUsername,
		AssignedToUsername: view.AssignedToUsername,
		CreatedAt:          view.CreatedAt,
		UpdatedAt:          view.UpdatedAt,
	}

	if point := view.PickupPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.PickupLat, resp.PickupLng = &lat, &lng
	}
	if point := view.DropPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.DropLat, resp.DropLng = &lat, &lng
	}

	if view.AssignedToID != nil {
		id := view.AssignedToID.String()
		resp.AssignedToID = &id
	}

	return resp
}

func responseFromOrder(aggregate *order.Order) orderResponse {
	details := aggregate.Details()
	createdBy := aggregate.CreatedBy()

	resp := orderResponse{
		ID:                aggregate.ID().String(),
		Code:              aggregate.Code(),
		CustomerName:      details.CustomerName,
		Address:           details.Address,
		PickupAddress:     details.PickupAddress,
		DropAddress:       details.DropAddress,
		Phone:             details.Phone,
		COD:               details.COD,
		Status:            aggregate.Status().String(),
		CreatedByID:       createdBy.ID().String(),
		CreatedByUsername: createdBy.Username(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}

	if point := details.PickupPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.PickupLat, resp.PickupLng = &lat, &lng
	}
	if point := details.DropPoint; point != nil {
		lat, lng := point.Lat(), point.Lng()
		resp.DropLat, resp.DropLng = &lat, &lng
	}

	if assignee := aggregate.AssignedTo(); assignee != nil {
		id := assignee.ID().String()
		resp.AssignedToID = &id
		resp.AssignedToUsername = assignee.Username()
	}

	return resp
}

func responseFromShiftView(view queries.ShiftView) shiftResponse {
	resp := shiftResponse{
		ID:       view.ID.String(),
		CheckIn:  view.CheckIn,
		CheckOut: view.CheckOut,
		Hours:    view.Hours,
	}

	if view.OrderID != nil {
		id := view.OrderID.String()
		resp.OrderID = &id
	}

	return resp
}

func shiftResponseFromDomain(shift *attendance.Shift) shiftResponse {
	resp := shiftResponse{
		ID:       shift.ID().String(),
		CheckIn:  shift.CheckIn(),
		CheckOut: shift.CheckOut(),
		Hours:    shift.Hours(),
	}

	if orderID := shift.OrderID(); orderID != nil {
		id := orderID.String()
		resp.OrderID = &id
	}

	return resp
}
