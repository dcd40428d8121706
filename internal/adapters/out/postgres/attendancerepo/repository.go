package attendancerepo

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"
)

// GormAttendanceRepository implements AttendanceRepository using GORM.
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GORM attendance repository.
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// Add saves a new shift. When the courier already has an open shift the
// partial unique index rejects the insert and a ConflictError is returned,
// so concurrent check-ins resolve to exactly one winner.
func (r *GormAttendanceRepository) Add(ctx context.Context, shift *attendance.Shift) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	dto := fromDomain(shift)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("courier already has an open shift", err)
		}
		return err
	}

	shift.SetCheckIn(dto.CheckIn)
	return nil
}

// Update saves an existing shift, typically to record its check-out.
func (r *GormAttendanceRepository) Update(ctx context.Context, shift *attendance.Shift) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	dto := fromDomain(shift)
	result := r.db.WithContext(ctx).
		Model(&ShiftDTO{}).
		Where("id = ?", dto.ID).
		Select("check_out").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shift", shift.ID().String())
	}

	return nil
}

// GetOpenShift retrieves the courier's currently open shift.
func (r *GormAttendanceRepository) GetOpenShift(ctx context.Context, courierID kernel.UUID) (*attendance.Shift, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto ShiftDTO
	err := r.db.WithContext(ctx).
		First(&dto, "courier_id = ? AND check_out IS NULL", courierID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open shift for courier", courierID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenBefore retrieves every shift still open whose check-in is older
// than the cutoff. Used by the stale shift cleanup job.
func (r *GormAttendanceRepository) GetOpenBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Shift, error) {
	var dtos []ShiftDTO
	err := r.db.WithContext(ctx).
		Where("check_out IS NULL AND check_in < ?", cutoff).
		Order("check_in").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	shifts := make([]*attendance.Shift, 0, len(dtos))
	for _, dto := range dtos {
		shift, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// ListRecent streams the courier's shifts newest first, at most limit of
// them. The sequence is lazy: rows are fetched as the caller iterates, and
// the underlying cursor is released when iteration stops early. Each call
// restarts from a fresh query.
func (r *GormAttendanceRepository) ListRecent(
	ctx context.Context,
	courierID kernel.UUID,
	limit int,
) iter.Seq2[*attendance.Shift, error] {
	return func(yield func(*attendance.Shift, error) bool) {
		rows, err := r.db.WithContext(ctx).
			Model(&ShiftDTO{}).
			Where("courier_id = ?", courierID.Bytes()).
			Order("check_in DESC").
			Limit(limit).
			Rows()
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dto ShiftDTO
			if err = r.db.ScanRows(rows, &dto); err != nil {
				yield(nil, err)
				return
			}

			shift, domainErr := toDomain(dto)
			if domainErr != nil {
				yield(nil, domainErr)
				return
			}

			if !yield(shift, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
