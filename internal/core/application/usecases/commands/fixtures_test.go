package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validCreateInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		CustomerName: "Nimal Perera",
		MobileNo:     "0771234567",
		Address:      "12 Temple Road, Kandy",
		Platform:     "instagram",
		OrderDate:    "2026-03-01",
		Deadline:     "2026-03-10",
		Description:  "Printed shirt",
		Total:        "1000.00",
		Advance:      "200.00",
		Items:        []commands.ItemInput{{Name: "Custom Shirt"}},
	}
}

// storedOrder builds an order as a repository would return it.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	orderDate, _ := kernel.ParseDate("2026-03-01")
	deadline, _ := kernel.ParseDate("2026-03-10")
	total, _ := kernel.ParseMoney("1000")
	advance, _ := kernel.ParseMoney("200")
	balance, _ := kernel.ParseMoney("800")
	item, err := order.NewItem(kernel.NewUUID(), "Custom Shirt", nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.RestoreParams{
		ID:   kernel.NewUUID(),
		Code: "ORD-000001",
		Details: order.Details{
			CustomerName: "Nimal Perera",
			MobileNo:     "0771234567",
			Address:      "Kandy",
			Description:  "Printed shirt",
			Platform:     order.WhatsApp,
			OrderDate:    orderDate,
			Deadline:     deadline,
		},
		Status:  status,
		Total:   total,
		Advance: advance,
		Balance: balance,
		Items:   []*order.Item{item},
	})
	require.NoError(t, err)
	return o
}
