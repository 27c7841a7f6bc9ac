package commands_test

import (
	"context"
	"errors"
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProgressOrderRepository struct{ mock.Mock }

func (m *MockProgressOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockProgressOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockProgressOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockProgressOrderRepository) GetAllActive(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProgressUoW struct{ mock.Mock }

func (m *MockProgressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProgressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockProgressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockProgressUoWFactory struct{ mock.Mock }

func (m *MockProgressUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func orderWithOnePiece(t *testing.T, quantity int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "user-1", "Birthday batch", nil)
	require.NoError(t, err)
	require.NoError(t, o.AddPiece(singlePricedProduct(t, 12.5), quantity, nil))
	return o
}

func TestSetPrintedCountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderWithOnePiece(t, 3)
	cmd, _ := commands.NewSetPrintedCountCommand(o.ID(), 0, 2)

	repo := new(MockProgressOrderRepository)
	uow := new(MockProgressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPrintedCountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{0: 2}, o.PrintedCounts())
	assert.Equal(t, order.Printing, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetPrintedCountCommandHandler_Handle_ClampsToQuantity(t *testing.T) {
	ctx := t.Context()
	o := orderWithOnePiece(t, 3)
	cmd, _ := commands.NewSetPrintedCountCommand(o.ID(), 0, 99)

	repo := new(MockProgressOrderRepository)
	uow := new(MockProgressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPrintedCountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{0: 3}, o.PrintedCounts())
	assert.Equal(t, order.Printed, o.Status())
}

func TestSetPrintedCountCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SetPrintedCountCommand{} // not constructed properly
	factory := new(MockProgressUoWFactory)
	h := commands.NewSetPrintedCountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSetPrintedCountCommandHandler_Handle_IndexOutOfRange(t *testing.T) {
	ctx := t.Context()
	o := orderWithOnePiece(t, 3)
	cmd, _ := commands.NewSetPrintedCountCommand(o.ID(), 5, 1)

	repo := new(MockProgressOrderRepository)
	uow := new(MockProgressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProgressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetPrintedCountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrIndexOutOfRange)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
