package servers

import (
	"fmt"
	"net/http"

	"orderdesk/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all orders, soonest deadline first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// Create an order with its items
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Open orders whose deadline has passed
	// (GET /api/v1/orders/overdue)
	GetOverdueOrders(ctx echo.Context, params GetOverdueOrdersParams) error
	// Delete an order and its items
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id OrderID) error
	// Get one order
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id OrderID) error
	// Partially update an order; items, when present, replace all items
	// (PATCH /api/v1/orders/{id})
	UpdateOrder(ctx echo.Context, id OrderID) error
	// Attach proof-of-delivery images
	// (POST /api/v1/orders/{id}/proof)
	UploadOrderProof(ctx echo.Context, id OrderID) error
	// Create a user account
	// (POST /api/v1/auth/register)
	Register(ctx echo.Context) error
	// Exchange credentials for an access token
	// (POST /api/v1/auth/login)
	Login(ctx echo.Context) error
	// Profile of the caller
	// (GET /api/v1/users/me)
	GetMe(ctx echo.Context) error
	// Rename the caller's shop; an absent or blank name clears it
	// (PATCH /api/v1/users/me)
	UpdateMe(ctx echo.Context) error
	// Replace the caller's avatar image
	// (POST /api/v1/users/me/avatar)
	UploadAvatar(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOverdueOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOverdueOrders(ctx echo.Context) error {
	var err error

	var params GetOverdueOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "today", ctx.QueryParams(), &params.Today)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter today: %s", err))
	}

	return w.Handler.GetOverdueOrders(ctx, params)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

// UploadOrderProof converts echo context to params.
func (w *ServerInterfaceWrapper) UploadOrderProof(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UploadOrderProof(ctx, id)
}

// Register converts echo context to params.
func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

// GetMe converts echo context to params.
func (w *ServerInterfaceWrapper) GetMe(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetMe(ctx)
}

// UpdateMe converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateMe(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UpdateMe(ctx)
}

// UploadAvatar converts echo context to params.
func (w *ServerInterfaceWrapper) UploadAvatar(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.UploadAvatar(ctx)
}

func bindOrderID(ctx echo.Context) (OrderID, error) {
	var id OrderID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/auth/login", wrapper.Login)
	router.POST(baseURL+"/api/v1/auth/register", wrapper.Register)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/overdue", wrapper.GetOverdueOrders)
	router.DELETE(baseURL+"/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:id", wrapper.UpdateOrder)
	router.POST(baseURL+"/api/v1/orders/:id/proof", wrapper.UploadOrderProof)
	router.GET(baseURL+"/api/v1/users/me", wrapper.GetMe)
	router.PATCH(baseURL+"/api/v1/users/me", wrapper.UpdateMe)
	router.POST(baseURL+"/api/v1/users/me/avatar", wrapper.UploadAvatar)
}

// GetSwagger parses api/openapi.yml. Each call returns a fresh document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi spec: %w", err)
	}
	return swagger, nil
}
