package queries

import (
	"context"
	"errors"

	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery counts orders per status without loading them.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryHandler aggregates directly in the database.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (order.StatusCounts, error) {
	if err := query.Validate(); err != nil {
		return order.StatusCounts{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return order.StatusCounts{}, err
	}
	defer rows.Close()

	counts := order.NewStatusCounts()
	for rows.Next() {
		var status, n int
		if err = rows.Scan(&status, &n); err != nil {
			return order.StatusCounts{}, err
		}
		counts.Add(order.Status(status), n)
	}
	if err = rows.Err(); err != nil {
		return order.StatusCounts{}, err
	}

	return counts, nil
}
