package kernel

import (
	"github.com/google/uuid"

	"orderdesk/internal/pkg/errs"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
// Aggregates use it to reject identifiers that never went through a constructor.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, order items and users.
//
// It wraps github.com/google/uuid so the domain model does not depend on the
// library type directly. The zero value is invalid: every UUID must come from
// NewUUID, UUIDFromString or UUIDFromBytes, and Validate reports a zero value
// with ErrUUIDIsNotConstructed.
//
// UUID is a comparable value; copies are independent and safe to share
// between goroutines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
//
//	if orderID.IsEqual(itemID) {
//	    // never happens for two generated ids
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
//
// Command handlers call it when an order, an item or a user is created; the
// HTTP adapter calls it before building a CreateOrderCommand so the id is
// known before the transaction starts.
//
// Example:
//
//	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), input)
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID received as text.
//
// The canonical form is expected from clients, but the braced, urn and
// hyphen-less forms accepted by google/uuid parse as well:
//   - "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
//   - "{1b4e28ba-2fa1-11d2-883f-0016d3cca427}"
//   - "urn:uuid:1b4e28ba-2fa1-11d2-883f-0016d3cca427"
//
// Malformed input fails with errs.ErrValueIsInvalid; the nil UUID parses but
// is rejected with ErrUUIDIsNotConstructed.
//
// Example:
//
//	id, err := kernel.UUIDFromString("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
//	if err != nil {
//	    return fmt.Errorf("order id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return fromGoogleUUID(id)
}

// UUIDFromBytes builds a UUID from its 16-byte representation.
//
// Postgres uuid columns and the openapi_types.UUID path parameters both
// arrive as 16-byte arrays, so repositories and the HTTP adapter restore ids
// through this function. Any other length fails with errs.ErrValueIsInvalid.
//
// Example:
//
//	func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
//	    orderID, err := kernel.UUIDFromBytes(id[:])
//	    ...
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return fromGoogleUUID(id)
}

func fromGoogleUUID(id uuid.UUID) (UUID, error) {
	newID := UUID{id: id}
	if err := newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the lower-case canonical form, e.g.
// "1b4e28ba-2fa1-11d2-883f-0016d3cca427". It is what logs, JWT subjects and
// error messages carry.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID.
//
// It exists for the boundaries: gorm DTOs store it in uuid columns and the
// generated HTTP types use it as openapi_types.UUID. Domain code compares ids
// with IsEqual instead.
//
// Example:
//
//	dto := OrderDTO{ID: o.ID().Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
//
// Example:
//
//	a := kernel.NewUUID()
//	b := a
//	a.IsEqual(b)               // true
//	a.IsEqual(kernel.NewUUID()) // false
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
//
// Constructors of commands, queries and aggregates call it on every id they
// receive, so a zero-value UUID never reaches a repository.
//
// Example:
//
//	func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return DeleteOrderCommand{}, err
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
