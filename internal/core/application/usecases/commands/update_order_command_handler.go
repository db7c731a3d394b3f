package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a partial update, replacing the items when the
// command carries them. Field patch and item replacement share one transaction.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound for unknown orders.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patch := cmd.patch
	if patch.ReplaceItems {
		items, err := buildItems(cmd.items)
		if err != nil {
			return nil, err
		}
		patch.Items = items
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Apply(patch); err != nil {
		return nil, err
	}

	if patch.ReplaceItems {
		if err = orderRepo.ReplaceItems(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := orderRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
