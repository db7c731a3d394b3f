package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// AttachProofImagesCommandHandler records proof-of-delivery images on an order.
type AttachProofImagesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAttachProofImagesCommandHandler(uowFactory OrderUoWFactory) AttachProofImagesCommandHandler {
	return AttachProofImagesCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound for unknown orders and errs.ErrInvalidState for
// cancelled ones; in both cases nothing is written.
func (h *AttachProofImagesCommandHandler) Handle(ctx context.Context, cmd AttachProofImagesCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	if err = aggregate.AttachProofImages(cmd.URLs(), cmd.MarkCompleted()); err != nil {
		return nil, err
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
