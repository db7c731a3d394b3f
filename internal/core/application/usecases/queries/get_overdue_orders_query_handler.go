package queries

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler reads overdue orders straight from the orders table.
// Results are sorted by deadline, then by order code.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_code,
			customer_name,
			mobile_no,
			status,
			deadline,
			balance
		FROM orders
		WHERE status IN (?, ?) AND deadline < ?
		ORDER BY deadline, order_code
	`, order.Pending.String(), order.InProgress.String(), query.Today().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse
		var id uuid.UUID
		var code, status string
		var deadline time.Time
		var balance decimal.Decimal

		if err = rows.Scan(&id, &code, &resp.CustomerName, &resp.MobileNo, &status, &deadline, &balance); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Code, err = order.ParseCode(code); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.Balance, err = kernel.NewMoney(balance); err != nil {
			return nil, err
		}
		resp.Deadline = kernel.DateFromTime(deadline)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
