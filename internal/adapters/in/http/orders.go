package http

import (
	"net/http"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	board, err := s.h.GetOrderBoard.Handle(ctx.Request().Context(), queries.NewGetOrderBoardQuery(s.historyLimit))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(board.Active))
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context, params servers.GetOrderHistoryParams) error {
	limit := s.historyLimit
	if params.Limit != nil {
		if *params.Limit < 1 {
			return badRequest(ctx, "limit must be at least 1")
		}
		limit = *params.Limit
	}

	board, err := s.h.GetOrderBoard.Handle(ctx.Request().Context(), queries.NewGetOrderBoardQuery(limit))
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(board.History))
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	counts, err := s.h.GetOrderStats.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderStats(counts))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, string(body.Status))
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toOrder(view))
}
