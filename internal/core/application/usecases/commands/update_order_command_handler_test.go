package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_TotalOnly(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderCommand(stored.ID(), commands.UpdateOrderInput{Total: ptr("1500")})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "1500.00", updated.Total().String())
	assert.Equal(t, "200.00", updated.Advance().String())
	assert.Equal(t, "1300.00", updated.Balance().String())
	repo.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplacesItems(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	originalItemID := stored.Items()[0].ID()
	cmd, _ := commands.NewUpdateOrderCommand(stored.ID(), commands.UpdateOrderInput{
		Items: &[]commands.ItemInput{{Name: "Hoodie", Price: "2500"}, {Name: "Sticker"}},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("ReplaceItems", ctx, stored).Return(nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, updated.Items(), 2)
	assert.Equal(t, "Hoodie", updated.Items()[0].Name())
	assert.Equal(t, "2500.00", updated.Items()[0].Price().String())
	assert.Nil(t, updated.Items()[1].Price())
	for _, i := range updated.Items() {
		assert.False(t, i.ID().IsEqual(originalItemID))
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderCommand(stored.ID(), commands.UpdateOrderInput{Status: ptr("completed")})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(nil, errs.NewObjectNotFoundError("order", stored.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItemsError(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderCommand(stored.ID(), commands.UpdateOrderInput{
		Items: &[]commands.ItemInput{{Name: "Hoodie"}},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("ReplaceItems", ctx, stored).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.UpdateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
