package order

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrItemNameIsRequired is returned for a blank item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
	// ErrItemIsNotConstructed is returned when using a zero-value Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line of an order. It belongs to exactly one order and has no life of its own:
// it is created with the order, replaced wholesale on update and deleted with it.
type Item struct {
	id    kernel.UUID
	name  string
	price *kernel.Money
	guard guard.ConstructorGuard
}

// NewItem builds an item. The price is optional; nil means "not priced".
func NewItem(id kernel.UUID, name string, price *kernel.Money) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

// Price returns nil for unpriced items.
func (i *Item) Price() *kernel.Money {
	if i.price == nil {
		return nil
	}
	price := *i.price
	return &price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price *kernel.Money) error {
	if price == nil {
		i.price = nil
		return nil
	}
	if err := price.Validate(); err != nil {
		return err
	}
	p := *price
	i.price = &p
	return nil
}
