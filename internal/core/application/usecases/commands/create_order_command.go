package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderInput is the raw order as received from a client.
// Total and Advance are decimal strings; anything unparsable counts as 0.
type CreateOrderInput struct {
	CustomerName string
	MobileNo     string
	Address      string
	Platform     string
	OrderDate    string
	Deadline     string
	Description  string
	Notes        *string
	Total        string
	Advance      string
	Items        []ItemInput
}

// CreateOrderCommand represents a request to register a new order with its items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), CreateOrderInput{
//	    CustomerName: "Nimal", MobileNo: "0771234567", Address: "Kandy",
//	    Platform: "instagram", OrderDate: "2026-03-01", Deadline: "2026-03-10",
//	    Description: "Printed shirt", Total: "1000.00", Advance: "200.00",
//	    Items: []ItemInput{{Name: "Custom Shirt"}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	// created.Balance().String() == "800.00"
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	details order.Details
	total   kernel.Money
	advance kernel.Money
	items   []itemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses and validates every field and reports all problems at once.
// An empty item list fails with order.ErrItemsAreRequired.
func NewCreateOrderCommand(orderID kernel.UUID, in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if len(in.Items) == 0 {
		return CreateOrderCommand{}, order.ErrItemsAreRequired
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(in),
		cmd.setFinancials(in.Total, in.Advance),
		cmd.setItems(in.Items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

func (c CreateOrderCommand) Advance() kernel.Money {
	return c.advance
}

// ItemCount returns the number of requested items.
func (c CreateOrderCommand) ItemCount() int {
	return len(c.items)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDetails(in CreateOrderInput) error {
	platform, platformErr := order.ParsePlatform(in.Platform)
	orderDate, orderDateErr := kernel.ParseDate(in.OrderDate)
	deadline, deadlineErr := kernel.ParseDate(in.Deadline)
	if err := errors.Join(platformErr, orderDateErr, deadlineErr); err != nil {
		return err
	}

	details := order.Details{
		CustomerName: in.CustomerName,
		MobileNo:     in.MobileNo,
		Address:      in.Address,
		Description:  in.Description,
		Notes:        in.Notes,
		Platform:     platform,
		OrderDate:    orderDate,
		Deadline:     deadline,
	}
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setFinancials(total, advance string) error {
	t, totalErr := kernel.ParseMoneyOrZero(total)
	a, advanceErr := kernel.ParseMoneyOrZero(advance)
	if err := errors.Join(totalErr, advanceErr); err != nil {
		return err
	}
	c.total, c.advance = t, a
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	specs, err := parseItems(inputs)
	if err != nil {
		return err
	}
	c.items = specs
	return nil
}
