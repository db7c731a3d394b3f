package commands

import (
	"errors"
	"slices"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrAttachProofImagesCommandIsNotConstructed = errors.New(
	"AttachProofImagesCommand must be created via NewAttachProofImagesCommand constructor",
)

// AttachProofImagesCommand appends already stored proof image URLs to an order and
// optionally marks it completed.
//
// Example:
//
//	cmd, _ := NewAttachProofImagesCommand(orderID, []string{"/uploads/proofs/1.jpg"}, true)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // the order is cancelled
//	}
type AttachProofImagesCommand struct {
	orderID       kernel.UUID
	urls          []string
	markCompleted bool

	guard guard.ConstructorGuard
}

func NewAttachProofImagesCommand(orderID kernel.UUID, urls []string, markCompleted bool) (AttachProofImagesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachProofImagesCommand{}, err
	}

	return AttachProofImagesCommand{
		orderID:       orderID,
		urls:          slices.Clone(urls),
		markCompleted: markCompleted,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AttachProofImagesCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofImagesCommandIsNotConstructed)
}

func (c AttachProofImagesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AttachProofImagesCommand) URLs() []string {
	return slices.Clone(c.urls)
}

func (c AttachProofImagesCommand) MarkCompleted() bool {
	return c.markCompleted
}
