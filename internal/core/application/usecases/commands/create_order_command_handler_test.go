package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

func testPrincipal(t *testing.T, username string, isAdmin bool) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), username, isAdmin)
	require.NoError(t, err)
	return p
}

func testUserRef(t *testing.T, username string) kernel.UserRef {
	t.Helper()
	ref, err := kernel.NewUserRef(kernel.NewUUID(), username)
	require.NoError(t, err)
	return ref
}

func testDetails() order.Details {
	return order.Details{
		CustomerName: "Ayesha Rahman",
		Address:      "12 Lake View Rd",
		Phone:        "+8801711111111",
		COD:          25000,
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	creator := testPrincipal(t, "dispatch.admin", true)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1001", testDetails(), nil, creator)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, "ORD-1001").
			Return(nil, errs.NewObjectNotFoundError("order", "ORD-1001")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusNew, created.Status())

	// No explicit assignee means the creator delivers it.
	require.NotNil(t, created.AssignedTo())
	require.True(t, created.AssignedTo().ID().IsEqual(creator.ID()))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	creator := testPrincipal(t, "dispatch.admin", true)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1001", testDetails(), nil, creator)
	require.NoError(t, err)

	existing, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", testDetails(), creator.Ref(), nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", mock.Anything, "ORD-1001").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)

	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_ExplicitAssignee(t *testing.T) {
	creator := testPrincipal(t, "dispatch.admin", true)
	assignee := testUserRef(t, "courier.one")

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "ORD-1002", testDetails(), &assignee, creator)
	require.NoError(t, err)
	require.NotNil(t, cmd.Assignee())
	require.True(t, cmd.Assignee().ID().IsEqual(assignee.ID()))
}

func TestNewCreateOrderCommand_EmptyCode(t *testing.T) {
	creator := testPrincipal(t, "dispatch.admin", true)

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", testDetails(), nil, creator)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
