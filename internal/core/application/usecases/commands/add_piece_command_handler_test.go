package commands_test

import (
	"context"
	"errors"
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPieceOrderRepository struct{ mock.Mock }

func (m *MockPieceOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockPieceOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockPieceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockPieceOrderRepository) GetAllActive(_ context.Context, _ string) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPieceProductRepository struct{ mock.Mock }

func (m *MockPieceProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockPieceProductRepository) Update(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockPieceProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockPieceProductRepository) GetAllVisible(_ context.Context, _ string) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPieceMaterialRepository struct{ mock.Mock }

func (m *MockPieceMaterialRepository) Add(_ context.Context, _ *material.Material) error {
	return errors.New("not implemented in mock")
}
func (m *MockPieceMaterialRepository) Update(_ context.Context, _ *material.Material) error {
	return errors.New("not implemented in mock")
}
func (m *MockPieceMaterialRepository) Get(_ context.Context, _ kernel.UUID) (*material.Material, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPieceMaterialRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*material.Material, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*material.Material), args.Error(1)
}
func (m *MockPieceMaterialRepository) GetAllVisible(_ context.Context, _ string) ([]*material.Material, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPieceUoW struct{ mock.Mock }

func (m *MockPieceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPieceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPieceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPieceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPieceUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}
func (m *MockPieceUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockPieceUoWFactory struct{ mock.Mock }

func (m *MockPieceUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func singlePricedProduct(t *testing.T, price float64) *product.Product {
	t.Helper()
	req, err := product.NewPartRequirement("hull", 13)
	require.NoError(t, err)
	p, err := product.NewProduct(
		kernel.NewUUID(), "user-1", "Benchy", 2.5,
		[]product.PartRequirement{req}, &price, nil,
	)
	require.NoError(t, err)
	return p
}

func TestAddPieceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o, err := order.NewOrder(orderID, "user-1", "Birthday batch", nil)
	require.NoError(t, err)
	template := singlePricedProduct(t, 12.5)

	cmd, _ := commands.NewAddPieceCommand(orderID, template.ID(), 2)

	orderRepo := new(MockPieceOrderRepository)
	productRepo := new(MockPieceProductRepository)
	materialRepo := new(MockPieceMaterialRepository)
	uow := new(MockPieceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, template.ID()).Return(template, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPieceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPieceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, o.Pieces(), 1)
	assert.InDelta(t, 25.0, o.Totals().Revenue, 1e-9)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	materialRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddPieceCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddPieceCommand{} // not constructed properly
	factory := new(MockPieceUoWFactory)
	h := commands.NewAddPieceCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddPieceCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewAddPieceCommand(orderID, kernel.NewUUID(), 1)

	orderRepo := new(MockPieceOrderRepository)
	uow := new(MockPieceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPieceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPieceCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddPieceCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o, err := order.NewOrder(orderID, "user-1", "Birthday batch", nil)
	require.NoError(t, err)
	template := singlePricedProduct(t, 12.5)

	cmd, _ := commands.NewAddPieceCommand(orderID, template.ID(), 1)

	orderRepo := new(MockPieceOrderRepository)
	productRepo := new(MockPieceProductRepository)
	materialRepo := new(MockPieceMaterialRepository)
	uow := new(MockPieceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, template.ID()).Return(template, nil).Once(),
		uow.On("MaterialRepository").Return(materialRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPieceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPieceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
