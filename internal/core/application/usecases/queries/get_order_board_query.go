package queries

import (
	"context"
	"errors"

	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/guard"
)

var (
	ErrGetOrderBoardQueryIsNotConstructed = errors.New(
		"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
	)
)

// GetOrderBoardQuery builds the dashboard projection.
//
// Example:
//
//	query := NewGetOrderBoardQuery(0) // default history length
//	board, err := handler.Handle(ctx, query)
//	fmt.Println(board.Counts.Of(order.Pending), len(board.Active), len(board.History))
type GetOrderBoardQuery struct {
	historyLimit int

	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery uses order.DefaultHistoryLimit when historyLimit <= 0.
func NewGetOrderBoardQuery(historyLimit int) GetOrderBoardQuery {
	if historyLimit <= 0 {
		historyLimit = order.DefaultHistoryLimit
	}
	return GetOrderBoardQuery{historyLimit: historyLimit, guard: guard.NewConstructorGuard()}
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

func (q GetOrderBoardQuery) HistoryLimit() int {
	return q.historyLimit
}

// OrderBoardView is the dashboard: counts per status, active orders oldest first and the
// most recent deliveries newest first.
type OrderBoardView struct {
	Counts  order.StatusCounts
	Active  []OrderView
	History []OrderView
}

type GetOrderBoardQueryHandler struct {
	orders OrderReader
}

func NewGetOrderBoardQueryHandler(orders OrderReader) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{orders: orders}
}

func (h GetOrderBoardQueryHandler) Handle(ctx context.Context, query GetOrderBoardQuery) (OrderBoardView, error) {
	if err := query.Validate(); err != nil {
		return OrderBoardView{}, err
	}

	orders, err := h.orders.List(ctx)
	if err != nil {
		return OrderBoardView{}, err
	}

	board := order.NewBoard(orders, query.HistoryLimit())
	return OrderBoardView{
		Counts:  board.Counts(),
		Active:  newOrderViews(board.Active()),
		History: newOrderViews(board.History()),
	}, nil
}
