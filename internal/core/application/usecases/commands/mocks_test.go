package commands_test

import (
	"context"
	"iter"
	"time"

	"github.com/stretchr/testify/mock"

	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAttendanceRepository struct{ mock.Mock }

func (m *MockAttendanceRepository) Add(ctx context.Context, s *attendance.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockAttendanceRepository) Update(ctx context.Context, s *attendance.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockAttendanceRepository) GetOpenShift(ctx context.Context, courierID kernel.UUID) (*attendance.Shift, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Shift), args.Error(1)
}

func (m *MockAttendanceRepository) GetOpenBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Shift, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.Shift), args.Error(1)
}

func (m *MockAttendanceRepository) ListRecent(
	ctx context.Context,
	courierID kernel.UUID,
	limit int,
) iter.Seq2[*attendance.Shift, error] {
	args := m.Called(ctx, courierID, limit)
	return args.Get(0).(iter.Seq2[*attendance.Shift, error])
}

type MockAttendanceUoW struct{ mock.Mock }

func (m *MockAttendanceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAttendanceUoW) AttendanceRepository() ports.AttendanceRepository {
	args := m.Called()
	return args.Get(0).(ports.AttendanceRepository)
}

type MockAttendanceUoWFactory struct{ mock.Mock }

func (m *MockAttendanceUoWFactory) Create() commands.AttendanceUoW {
	args := m.Called()
	return args.Get(0).(commands.AttendanceUoW)
}
