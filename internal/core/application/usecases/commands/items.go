package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ItemInput is an item as supplied by a client. An empty Price means "not priced".
type ItemInput struct {
	Name  string
	Price string
}

// itemSpec is a validated ItemInput; ids are assigned when the items are built.
type itemSpec struct {
	name  string
	price *kernel.Money
}

func parseItems(inputs []ItemInput) ([]itemSpec, error) {
	specs := make([]itemSpec, 0, len(inputs))
	var errList []error

	for i, in := range inputs {
		spec := itemSpec{name: in.Name}
		if strings.TrimSpace(in.Name) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i)))
		}
		if strings.TrimSpace(in.Price) != "" {
			price, err := kernel.ParseMoney(in.Price)
			if err != nil {
				errList = append(errList, fmt.Errorf("items[%d].price: %w", i, err))
			} else {
				spec.price = &price
			}
		}
		specs = append(specs, spec)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return specs, nil
}

// buildItems gives every spec a fresh id, keeping the input order.
func buildItems(specs []itemSpec) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewItem(kernel.NewUUID(), spec.name, spec.price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
