// Package attendancerepo provides data transfer objects and mapping functions
// for shift persistence. The one-open-shift-per-courier rule lives here as a
// partial unique index on open rows, so it holds even under concurrent
// check-ins.
package attendancerepo

import (
	"time"

	"github.com/google/uuid"

	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
)

// ShiftDTO represents the database structure for persisting shifts.
type ShiftDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID  `gorm:"type:uuid;uniqueIndex:one_open_shift_per_courier,where:check_out IS NULL"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	CheckIn   time.Time  `gorm:"autoCreateTime"`
	CheckOut  *time.Time
}

// TableName overrides GORM's default naming convention to use "attendances".
func (ShiftDTO) TableName() string {
	return "attendances"
}

func fromDomain(shift *attendance.Shift) ShiftDTO {
	dto := ShiftDTO{
		ID:        shift.ID().Bytes(),
		CourierID: shift.CourierID().Bytes(),
		CheckIn:   shift.CheckIn(),
		CheckOut:  shift.CheckOut(),
	}

	if orderID := shift.OrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.OrderID = &raw
	}

	return dto
}

func toDomain(dto ShiftDTO) (*attendance.Shift, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return attendance.RestoreShift(id, courierID, orderID, dto.CheckIn, dto.CheckOut)
}
