// Package ports defines the contracts between the order desk core and its adapters:
// repositories, the unit of work, file storage and the authentication primitives.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
// It carries no business rules; every method runs in the transaction of the
// unit of work that produced the repository, if one is active.
type OrderRepository interface {
	// Add inserts the order row and all item rows.
	// A duplicate order code is reported as errs.ErrConflict.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order's scalar fields and proof images. Items are not touched.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems deletes every item of the order in one statement and inserts
	// the order's current items in their insertion order.
	ReplaceItems(ctx context.Context, aggregate *order.Order) error

	// Get loads the order with its items ordered by position.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List loads every order with its items, ascending by deadline.
	List(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its items.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
