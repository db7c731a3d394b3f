// Package servers holds the request and response types, the server interface and the
// echo routing for the operations described in api/openapi.yml.
package servers

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusPending    OrderStatus = "pending"
)

// Defines values for Platform.
const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformWebsite   Platform = "website"
	PlatformWhatsapp  Platform = "whatsapp"
)

// AccessToken defines model for AccessToken.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// Avatar defines model for Avatar.
type Avatar struct {
	AvatarUrl string `json:"avatarUrl"`
}

// Deleted defines model for Deleted.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address      string           `json:"address"`
	Advance      *string          `json:"advance,omitempty"`
	CustomerName string           `json:"customerName"`
	Deadline     string           `json:"deadline"`
	Description  string           `json:"description"`
	Items        []OrderItemInput `json:"items"`
	MobileNo     string           `json:"mobileNo"`
	Notes        *string          `json:"notes,omitempty"`
	OrderDate    string           `json:"orderDate"`
	Platform     Platform         `json:"platform"`
	Total        *string          `json:"total,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Address      string             `json:"address"`
	Advance      string             `json:"advance"`
	Balance      string             `json:"balance"`
	CreatedAt    time.Time          `json:"createdAt"`
	CustomerName string             `json:"customerName"`
	Deadline     openapi_types.Date `json:"deadline"`
	Description  string             `json:"description"`
	Id           openapi_types.UUID `json:"id"`
	Items        []OrderItem        `json:"items"`
	MobileNo     string             `json:"mobileNo"`
	Notes        *string            `json:"notes,omitempty"`
	OrderCode    string             `json:"orderCode"`
	OrderDate    openapi_types.Date `json:"orderDate"`
	Platform     Platform           `json:"platform"`
	ProofImages  []string           `json:"proofImages"`
	Status       OrderStatus        `json:"status"`
	Total        string             `json:"total"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Price *string            `json:"price,omitempty"`
}

// OrderItemInput defines model for OrderItemInput.
type OrderItemInput struct {
	Name string `json:"name"`

	// Price Decimal string such as "5000" or "5000.00"
	Price *string `json:"price,omitempty"`
}

// OrderPatch defines model for OrderPatch.
type OrderPatch struct {
	Address      *string                   `json:"address,omitempty"`
	Advance      *string                   `json:"advance,omitempty"`
	CustomerName *string                   `json:"customerName,omitempty"`
	Deadline     *string                   `json:"deadline,omitempty"`
	Description  *string                   `json:"description,omitempty"`
	Items        *[]OrderItemInput         `json:"items,omitempty"`
	MobileNo     *string                   `json:"mobileNo,omitempty"`
	Notes        nullable.Nullable[string] `json:"notes,omitempty"`
	OrderDate    *string                   `json:"orderDate,omitempty"`
	Platform     *Platform                 `json:"platform,omitempty"`
	Status       *OrderStatus              `json:"status,omitempty"`
	Total        *string                   `json:"total,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OverdueOrder defines model for OverdueOrder.
type OverdueOrder struct {
	Balance      string             `json:"balance"`
	CustomerName string             `json:"customerName"`
	Deadline     openapi_types.Date `json:"deadline"`
	Id           openapi_types.UUID `json:"id"`
	MobileNo     string             `json:"mobileNo"`
	OrderCode    string             `json:"orderCode"`
	Status       OrderStatus        `json:"status"`
}

// Platform defines model for Platform.
type Platform string

// Profile defines model for Profile.
type Profile struct {
	AvatarUrl *string            `json:"avatarUrl"`
	Email     string             `json:"email"`
	FullName  string             `json:"fullName"`
	Id        openapi_types.UUID `json:"id"`
	ShopName  string             `json:"shopName"`
}

// ProfilePatch defines model for ProfilePatch.
type ProfilePatch struct {
	ShopName *string `json:"shopName,omitempty"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Email    string  `json:"email"`
	FullName *string `json:"fullName,omitempty"`
	Password string  `json:"password"`
}

// RegisteredUser defines model for RegisteredUser.
type RegisteredUser struct {
	Email    string             `json:"email"`
	FullName string             `json:"fullName"`
	Id       openapi_types.UUID `json:"id"`
}

// OrderID defines model for OrderID.
type OrderID = openapi_types.UUID

// GetOverdueOrdersParams defines parameters for GetOverdueOrders.
type GetOverdueOrdersParams struct {
	// Today Reference day, defaults to the current date
	Today *openapi_types.Date `form:"today,omitempty" json:"today,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderPatch

// RegisterJSONRequestBody defines body for Register for application/json ContentType.
type RegisterJSONRequestBody = RegisterRequest

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// UpdateMeJSONRequestBody defines body for UpdateMe for application/json ContentType.
type UpdateMeJSONRequestBody = ProfilePatch
