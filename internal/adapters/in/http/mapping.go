package http

import (
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrderResponse(o *order.Order) servers.Order {
	details := o.Details()

	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		resp := servers.OrderItem{
			Id:   item.ID().Bytes(),
			Name: item.Name(),
		}
		if price := item.Price(); price != nil {
			s := price.String()
			resp.Price = &s
		}
		items = append(items, resp)
	}

	proofImages := o.ProofImages()
	if proofImages == nil {
		proofImages = []string{}
	}

	return servers.Order{
		Id:           o.ID().Bytes(),
		OrderCode:    o.Code().String(),
		CustomerName: details.CustomerName,
		MobileNo:     details.MobileNo,
		Address:      details.Address,
		Platform:     servers.Platform(details.Platform.String()),
		OrderDate:    openapi_types.Date{Time: details.OrderDate.Time()},
		Deadline:     openapi_types.Date{Time: details.Deadline.Time()},
		Status:       servers.OrderStatus(o.Status().String()),
		Total:        o.Total().String(),
		Advance:      o.Advance().String(),
		Balance:      o.Balance().String(),
		Description:  details.Description,
		Notes:        details.Notes,
		ProofImages:  proofImages,
		Items:        items,
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func toOverdueOrderResponse(o queries.GetOverdueOrdersQueryResponse) servers.OverdueOrder {
	return servers.OverdueOrder{
		Id:           o.ID.Bytes(),
		OrderCode:    o.Code.String(),
		CustomerName: o.CustomerName,
		MobileNo:     o.MobileNo,
		Status:       servers.OrderStatus(o.Status.String()),
		Deadline:     openapi_types.Date{Time: o.Deadline.Time()},
		Balance:      o.Balance.String(),
	}
}

func toProfileResponse(u *user.User) servers.Profile {
	return servers.Profile{
		Id:        u.ID().Bytes(),
		FullName:  u.FullName(),
		Email:     u.Email(),
		ShopName:  u.DisplayShopName(),
		AvatarUrl: u.AvatarURL(),
	}
}

func toCreateOrderInput(body servers.NewOrder) commands.CreateOrderInput {
	return commands.CreateOrderInput{
		CustomerName: body.CustomerName,
		MobileNo:     body.MobileNo,
		Address:      body.Address,
		Platform:     string(body.Platform),
		OrderDate:    body.OrderDate,
		Deadline:     body.Deadline,
		Description:  body.Description,
		Notes:        body.Notes,
		Total:        deref(body.Total),
		Advance:      deref(body.Advance),
		Items:        toItemInputs(body.Items),
	}
}

func toUpdateOrderInput(body servers.OrderPatch) commands.UpdateOrderInput {
	in := commands.UpdateOrderInput{
		CustomerName: body.CustomerName,
		MobileNo:     body.MobileNo,
		Address:      body.Address,
		OrderDate:    body.OrderDate,
		Deadline:     body.Deadline,
		Description:  body.Description,
		Total:        body.Total,
		Advance:      body.Advance,
	}
	if body.Notes.IsSpecified() {
		if body.Notes.IsNull() {
			in.ClearNotes = true
		} else if notes, err := body.Notes.Get(); err == nil {
			in.Notes = &notes
		}
	}
	if body.Platform != nil {
		platform := string(*body.Platform)
		in.Platform = &platform
	}
	if body.Status != nil {
		status := string(*body.Status)
		in.Status = &status
	}
	if body.Items != nil {
		items := toItemInputs(*body.Items)
		in.Items = &items
	}
	return in
}

func toItemInputs(items []servers.OrderItemInput) []commands.ItemInput {
	inputs := make([]commands.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.ItemInput{Name: item.Name, Price: deref(item.Price)}
	}
	return inputs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
