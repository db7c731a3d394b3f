package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order is created without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item required"))
)

// Details groups the descriptive, freely editable attributes of an order.
type Details struct {
	CustomerName string
	MobileNo     string
	Address      string
	Description  string
	Notes        *string
	Platform     Platform
	OrderDate    kernel.Date
	Deadline     kernel.Date
}

// Validate checks that the free-text fields are filled and the enumerations and dates are valid.
// It is the rule for new orders; updates may overwrite text with an empty string.
func (d Details) Validate() error {
	return errors.Join(d.validateText(), d.validateValues())
}

func (d Details) validateText() error {
	return errors.Join(
		requireText("customerName", d.CustomerName),
		requireText("mobileNo", d.MobileNo),
		requireText("address", d.Address),
		requireText("description", d.Description),
	)
}

func (d Details) validateValues() error {
	return errors.Join(
		d.Platform.Validate(),
		d.OrderDate.Validate(),
		d.Deadline.Validate(),
	)
}

// Order is the aggregate root of the order desk. It owns its items and keeps the
// financial figures consistent.
//
// Order follows these invariants:
//   - balance always equals total - advance (a negative balance is allowed)
//   - a new order has at least one item, filled text fields and starts Pending
//   - proof images are append-only and are never attached to a Cancelled order
//   - the order code never changes after creation
type Order struct {
	id          kernel.UUID
	code        Code
	details     Details
	status      Status
	total       kernel.Money
	advance     kernel.Money
	balance     kernel.Money
	proofImages []string
	items       []*Item
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewOrder creates a Pending order with its items and the derived balance.
//
// Returns:
//   - *Order: the order, not yet persisted (timestamps are zero until stored)
//   - error: joined validation errors; ErrItemsAreRequired for an empty item list
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), "Custom Shirt", nil)
//	total, _ := kernel.ParseMoneyOrZero("1000.00")
//	advance, _ := kernel.ParseMoneyOrZero("200.00")
//	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateCode(time.Now()), details, total, advance, []*order.Item{item})
//	// o.Balance().String() == "800.00"
func NewOrder(
	id kernel.UUID,
	code Code,
	details Details,
	total kernel.Money,
	advance kernel.Money,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		details.validateText(),
		o.setDetails(details),
		o.setItems(items),
		o.setFinancials(total, advance),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID          kernel.UUID
	Code        Code
	Details     Details
	Status      Status
	Total       kernel.Money
	Advance     kernel.Money
	Balance     kernel.Money
	ProofImages []string
	Items       []*Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestoreOrder rebuilds an order loaded from storage. Unlike NewOrder it accepts any status
// and an empty item list (an update may have replaced the items with nothing), but it still
// rejects a stored balance that disagrees with total - advance.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		guard:     guard.NewConstructorGuard(),
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCode(p.Code),
		o.setDetails(p.Details),
		o.setStatus(p.Status),
		o.setItems(p.Items),
		o.setFinancials(p.Total, p.Advance),
	); err != nil {
		return nil, err
	}
	o.proofImages = slices.Clone(p.ProofImages)

	if err := p.Balance.Validate(); err != nil {
		return nil, err
	}
	if !o.balance.IsEqual(p.Balance) {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance", fmt.Errorf(
			"stored balance %s does not equal total %s - advance %s", p.Balance, o.total, o.advance,
		))
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Code() Code {
	return o.code
}

// Details returns a copy of the descriptive attributes.
func (o *Order) Details() Details {
	d := o.details
	if d.Notes != nil {
		notes := *d.Notes
		d.Notes = &notes
	}
	return d
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Advance() kernel.Money {
	return o.advance
}

func (o *Order) Balance() kernel.Money {
	return o.balance
}

// ProofImages returns the attached proof URLs in attachment order.
func (o *Order) ProofImages() []string {
	return slices.Clone(o.proofImages)
}

// Items returns the items in insertion order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOverdue reports whether the deadline is before today while work is still open.
func (o *Order) IsOverdue(today kernel.Date) bool {
	return o.status.IsOpen() && o.details.Deadline.Before(today)
}

// Patch is a partial update. Nil fields are left untouched.
//
// ReplaceItems distinguishes "items omitted" from "items supplied": when it is set,
// Items fully replaces the current items, and an empty Items clears them.
type Patch struct {
	CustomerName *string
	MobileNo     *string
	Address      *string
	Description  *string
	Notes        *string
	// ClearNotes removes the notes; it wins over Notes.
	ClearNotes   bool
	Platform     *Platform
	Status       *Status
	OrderDate    *kernel.Date
	Deadline     *kernel.Date
	Total        *kernel.Money
	Advance      *kernel.Money
	ReplaceItems bool
	Items        []*Item
}

// TouchesFinancials is true when the patch supplies total or advance.
func (p Patch) TouchesFinancials() bool {
	return p.Total != nil || p.Advance != nil
}

// Apply validates the whole patch and then applies it; on error the order is unchanged.
//
// A supplied total or advance is combined with the current value of the other one and
// the balance is recomputed.
func (o *Order) Apply(p Patch) error {
	details := o.details
	if p.CustomerName != nil {
		details.CustomerName = *p.CustomerName
	}
	if p.MobileNo != nil {
		details.MobileNo = *p.MobileNo
	}
	if p.Address != nil {
		details.Address = *p.Address
	}
	if p.Description != nil {
		details.Description = *p.Description
	}
	switch {
	case p.ClearNotes:
		details.Notes = nil
	case p.Notes != nil:
		notes := *p.Notes
		details.Notes = &notes
	}
	if p.Platform != nil {
		details.Platform = *p.Platform
	}
	if p.OrderDate != nil {
		details.OrderDate = *p.OrderDate
	}
	if p.Deadline != nil {
		details.Deadline = *p.Deadline
	}

	status := o.status
	if p.Status != nil {
		status = *p.Status
	}

	total, advance := o.total, o.advance
	if p.Total != nil {
		total = *p.Total
	}
	if p.Advance != nil {
		advance = *p.Advance
	}

	items := o.items
	if p.ReplaceItems {
		items = p.Items
	}

	next := *o
	if err := errors.Join(
		next.setDetails(details),
		next.setStatus(status),
		next.setItems(items),
		next.setFinancials(total, advance),
	); err != nil {
		return err
	}

	*o = next
	return nil
}

// AttachProofImages appends proof-of-delivery URLs and, when markCompleted is set,
// moves the order to Completed.
//
// Business rules:
//   - a Cancelled order rejects the call with an InvalidStateError and stays unchanged
//   - URLs are appended after the existing ones, never replacing them
//   - completing an already Completed order is a no-op
func (o *Order) AttachProofImages(urls []string, markCompleted bool) error {
	if err := o.status.ValidateProofAttachment(); err != nil {
		return err
	}

	for i, url := range urls {
		if strings.TrimSpace(url) == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("proof image url #%d", i))
		}
	}

	o.proofImages = append(o.proofImages, urls...)
	if markCompleted {
		o.status = Completed
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	parsed, err := ParseCode(code.String())
	if err != nil {
		return err
	}
	o.code = parsed
	return nil
}

func (o *Order) setDetails(d Details) error {
	if err := d.validateValues(); err != nil {
		return err
	}
	if d.Notes != nil {
		notes := *d.Notes
		d.Notes = &notes
	}
	o.details = d
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

// setFinancials is the single place where balance is derived.
func (o *Order) setFinancials(total, advance kernel.Money) error {
	if err := errors.Join(total.Validate(), advance.Validate()); err != nil {
		return err
	}

	balance, err := total.Sub(advance)
	if err != nil {
		return err
	}

	o.total = total
	o.advance = advance
	o.balance = balance
	return nil
}

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
