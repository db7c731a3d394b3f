package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds open orders (pending or in progress) whose deadline
// is before the given day.
//
// Example:
//
//	query := NewGetOverdueOrdersQuery(kernel.DateFromTime(time.Now()))
//	overdue, err := handler.Handle(ctx, query)
//	for _, o := range overdue {
//	    fmt.Printf("%s for %s was due %s\n", o.Code, o.CustomerName, o.Deadline)
//	}
type GetOverdueOrdersQuery struct {
	today kernel.Date
	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(today kernel.Date) (GetOverdueOrdersQuery, error) {
	if err := today.Validate(); err != nil {
		return GetOverdueOrdersQuery{}, err
	}
	return GetOverdueOrdersQuery{today: today, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

func (q GetOverdueOrdersQuery) Today() kernel.Date {
	return q.today
}

// GetOverdueOrdersQueryResponse is a flat summary row; items are not loaded.
type GetOverdueOrdersQueryResponse struct {
	ID           kernel.UUID
	Code         order.Code
	CustomerName string
	MobileNo     string
	Status       order.Status
	Deadline     kernel.Date
	Balance      kernel.Money
}
