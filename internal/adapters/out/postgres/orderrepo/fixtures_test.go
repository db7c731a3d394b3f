package orderrepo_test

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

func newTestOrder(code string, deadline string, itemNames ...string) (*order.Order, error) {
	orderDate, _ := kernel.ParseDate("2026-03-01")
	due, err := kernel.ParseDate(deadline)
	if err != nil {
		return nil, err
	}
	total, _ := kernel.ParseMoney("1000.00")
	advance, _ := kernel.ParseMoney("200.00")
	notes := "ring before delivery"

	items := make([]*order.Item, 0, len(itemNames))
	for i, name := range itemNames {
		var price *kernel.Money
		if i == 0 {
			p, _ := kernel.ParseMoney("750.50")
			price = &p
		}
		item, itemErr := order.NewItem(kernel.NewUUID(), name, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if code == "" {
		code = order.GenerateCode(time.Now()).String()
	}

	return order.NewOrder(kernel.NewUUID(), order.Code(code), order.Details{
		CustomerName: "Nimal Perera",
		MobileNo:     "0771234567",
		Address:      "12 Temple Road, Kandy",
		Description:  "Printed shirt",
		Notes:        &notes,
		Platform:     order.Facebook,
		OrderDate:    orderDate,
		Deadline:     due,
	}, total, advance, items)
}
