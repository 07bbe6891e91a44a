package commands_test

import (
	"context"
	"errors"
	"testing"

	"supportbot/internal/core/application/usecases/commands"
	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/core/ports"
	"supportbot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByOrderNumber(_ context.Context, _ kernel.OrderNumber) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	number, err := kernel.NewOrderNumber(42)
	require.NoError(t, err)
	total, err := kernel.NewMoneyFromString("19.99")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(number, total, order.Details{
		Status:       "Shipped",
		Items:        []string{"Widget", "Gadget"},
		CustomerName: "Ann",
		Address:      "1 Main St",
		OrderDate:    "2024-01-01",
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Number().IsEqual(cmd.Number()) && o.Status() == "Shipped"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{}
	factory := new(MockUnitOfWorkFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	uow := new(MockUnitOfWork)
	factory := new(MockUnitOfWorkFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	tests := []struct {
		name   string
		addErr error
		target error
	}{
		{name: "duplicate number", addErr: errs.NewObjectAlreadyExistsError("orderNumber", "42"), target: errs.ErrObjectAlreadyExists},
		{name: "store failure", addErr: errors.New("add error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd := newCreateOrderCommand(t)

			repo := new(MockOrderRepository)
			uow := new(MockUnitOfWork)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(tt.addErr).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockUnitOfWorkFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCreateOrderCommandHandler(factory)
			err := h.Handle(ctx, cmd)
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "commit error")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
