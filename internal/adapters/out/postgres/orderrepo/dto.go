// Package orderrepo persists order aggregates in the "orders" and "order_items" tables.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Money columns are numeric(14,2),
// calendar dates are SQL dates and proof images a text array.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderCode    string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerName string          `gorm:"type:text;not null"`
	MobileNo     string          `gorm:"type:text;not null"`
	Address      string          `gorm:"type:text;not null"`
	Platform     string          `gorm:"type:varchar(16);not null"`
	OrderDate    time.Time       `gorm:"type:date;not null"`
	Deadline     time.Time       `gorm:"type:date;not null;index"`
	Description  string          `gorm:"type:text;not null"`
	Notes        *string         `gorm:"type:text"`
	Status       string          `gorm:"type:varchar(16);not null;default:pending;index"`
	Total        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Advance      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Balance      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ProofImages  pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the row of the order_items table. Position keeps insertion order.
type ItemDTO struct {
	ID       uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name     string              `gorm:"type:text;not null"`
	Price    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Position int                 `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	d := aggregate.Details()
	proofImages := pq.StringArray(aggregate.ProofImages())
	if proofImages == nil {
		proofImages = pq.StringArray{}
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderCode:    aggregate.Code().String(),
		CustomerName: d.CustomerName,
		MobileNo:     d.MobileNo,
		Address:      d.Address,
		Platform:     d.Platform.String(),
		OrderDate:    d.OrderDate.Time(),
		Deadline:     d.Deadline.Time(),
		Description:  d.Description,
		Notes:        d.Notes,
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total().Decimal(),
		Advance:      aggregate.Advance().Decimal(),
		Balance:      aggregate.Balance().Decimal(),
		ProofImages:  proofImages,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        itemsFromDomain(aggregate),
	}
}

func itemsFromDomain(aggregate *order.Order) []ItemDTO {
	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()
	dtos := make([]ItemDTO, 0, len(items))

	for i, item := range items {
		dto := ItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  orderID,
			Name:     item.Name(),
			Position: i,
		}
		if price := item.Price(); price != nil {
			dto.Price = decimal.NewNullDecimal(price.Decimal())
		}
		dtos = append(dtos, dto)
	}

	return dtos
}

// toDomain rebuilds the aggregate through order.RestoreOrder, so rows that break
// the balance invariant are reported instead of silently loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := order.ParseCode(dto.OrderCode)
	if err != nil {
		return nil, err
	}

	platform, err := order.ParsePlatform(dto.Platform)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	advance, err := kernel.NewMoney(dto.Advance)
	if err != nil {
		return nil, err
	}
	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:   id,
		Code: code,
		Details: order.Details{
			CustomerName: dto.CustomerName,
			MobileNo:     dto.MobileNo,
			Address:      dto.Address,
			Description:  dto.Description,
			Notes:        dto.Notes,
			Platform:     platform,
			OrderDate:    kernel.DateFromTime(dto.OrderDate),
			Deadline:     kernel.DateFromTime(dto.Deadline),
		},
		Status:      status,
		Total:       total,
		Advance:     advance,
		Balance:     balance,
		ProofImages: dto.ProofImages,
		Items:       items,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var price *kernel.Money
	if dto.Price.Valid {
		p, priceErr := kernel.NewMoney(dto.Price.Decimal)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	return order.NewItem(id, dto.Name, price)
}
