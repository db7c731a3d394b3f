package http

import (
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), toCreateOrderInput(body))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOverdueOrders handles GET /api/v1/orders/overdue.
func (s *Server) GetOverdueOrders(ctx echo.Context, params servers.GetOverdueOrdersParams) error {
	today := kernel.DateFromTime(s.now())
	if params.Today != nil {
		today = kernel.DateFromTime(params.Today.Time)
	}

	query, err := queries.NewGetOverdueOrdersQuery(today)
	if err != nil {
		return writeError(ctx, err)
	}

	overdue, err := s.handlers.OverdueOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.OverdueOrder, len(overdue))
	for i, o := range overdue {
		response[i] = toOverdueOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// UpdateOrder handles PATCH /api/v1/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, toUpdateOrderInput(body))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Deleted{Deleted: true})
}

// UploadOrderProof handles POST /api/v1/orders/{id}/proof.
// The order is checked before any file is stored, so a missing or cancelled order
// leaves no files behind.
func (s *Server) UploadOrderProof(ctx echo.Context, id servers.OrderID) error {
	if _, err := callerID(ctx); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return writeBadRequest(ctx, "Invalid multipart form")
	}

	markCompleted := false
	if raw := form.Value["markCompleted"]; len(raw) > 0 && raw[0] != "" {
		if markCompleted, err = strconv.ParseBool(raw[0]); err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("markCompleted", err))
		}
	}

	files, err := s.proofPolicy.Files(form)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	existing, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = existing.Status().ValidateProofAttachment(); err != nil {
		return writeError(ctx, err)
	}

	urls, err := s.proofPolicy.Store(ctx.Request().Context(), s.storage, files)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAttachProofImagesCommand(orderID, urls, markCompleted)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.AttachProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}
