package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderInput is a partial order update; nil fields are left untouched.
// A non-nil Items replaces every item of the order, an empty slice included.
// ClearNotes removes stored notes and takes precedence over Notes.
type UpdateOrderInput struct {
	CustomerName *string
	MobileNo     *string
	Address      *string
	Platform     *string
	Status       *string
	OrderDate    *string
	Deadline     *string
	Description  *string
	Notes        *string
	ClearNotes   bool
	Total        *string
	Advance      *string
	Items        *[]ItemInput
}

// UpdateOrderCommand represents a validated partial update of an order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	patch   order.Patch
	items   []itemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand parses the supplied fields. Total and advance fall back to 0
// when unparsable, like on create.
func NewUpdateOrderCommand(orderID kernel.UUID, in UpdateOrderInput) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(in),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReplacesItems reports whether the update carries an item list.
func (c UpdateOrderCommand) ReplacesItems() bool {
	return c.patch.ReplaceItems
}

// ClearsNotes reports whether the update removes the order notes.
func (c UpdateOrderCommand) ClearsNotes() bool {
	return c.patch.ClearNotes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPatch(in UpdateOrderInput) error {
	var errList []error
	p := order.Patch{
		CustomerName: in.CustomerName,
		MobileNo:     in.MobileNo,
		Address:      in.Address,
		Description:  in.Description,
		Notes:        in.Notes,
		ClearNotes:   in.ClearNotes,
	}

	if in.Platform != nil {
		platform, err := order.ParsePlatform(*in.Platform)
		errList = append(errList, err)
		p.Platform = &platform
	}
	if in.Status != nil {
		status, err := order.ParseStatus(*in.Status)
		errList = append(errList, err)
		p.Status = &status
	}
	if in.OrderDate != nil {
		d, err := kernel.ParseDate(*in.OrderDate)
		errList = append(errList, err)
		p.OrderDate = &d
	}
	if in.Deadline != nil {
		d, err := kernel.ParseDate(*in.Deadline)
		errList = append(errList, err)
		p.Deadline = &d
	}
	if in.Total != nil {
		m, err := kernel.ParseMoneyOrZero(*in.Total)
		errList = append(errList, err)
		p.Total = &m
	}
	if in.Advance != nil {
		m, err := kernel.ParseMoneyOrZero(*in.Advance)
		errList = append(errList, err)
		p.Advance = &m
	}
	if in.Items != nil {
		specs, err := parseItems(*in.Items)
		errList = append(errList, err)
		c.items = specs
		p.ReplaceItems = true
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.patch = p
	return nil
}
