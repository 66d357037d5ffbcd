// Package http exposes carts, orders and the menu over the REST API described in
// api/openapi.yml. Server implements the generated servers.ServerInterface.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type (
	createCartHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCartCommand) error
	}
	addCartProductHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartProductCommand) error
	}
	setCartLineQuantityHandler interface {
		Handle(ctx context.Context, cmd commands.SetCartLineQuantityCommand) error
	}
	removeCartProductHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCartProductCommand) error
	}
	discardCartHandler interface {
		Handle(ctx context.Context, cmd commands.DiscardCartCommand) error
	}
	submitOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitOrderCommand) error
	}
	advanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error
	}

	getMenuHandler interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.ProductView, error)
	}
	getCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.CartView, error)
	}
	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	listOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	getOrderBoardHandler interface {
		Handle(ctx context.Context, query queries.GetOrderBoardQuery) (queries.OrderBoardView, error)
	}
	getOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.StatusCounts, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCart          createCartHandler
	AddCartProduct      addCartProductHandler
	SetCartLineQuantity setCartLineQuantityHandler
	RemoveCartProduct   removeCartProductHandler
	DiscardCart         discardCartHandler
	SubmitOrder         submitOrderHandler
	AdvanceOrderStatus  advanceOrderStatusHandler

	GetMenu       getMenuHandler
	GetCart       getCartHandler
	GetOrder      getOrderHandler
	ListOrders    listOrdersHandler
	GetOrderBoard getOrderBoardHandler
	GetOrderStats getOrderStatsHandler
}

// Server implements servers.ServerInterface.
type Server struct {
	h            Handlers
	historyLimit int
	logger       *slog.Logger

	// submitting holds carts with a submission in flight; a second submit is refused.
	submitting sync.Map
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. historyLimit is the default length of
// GET /orders/history when no limit is given.
func NewServer(h Handlers, historyLimit int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:            h,
		historyLimit: historyLimit,
		logger:       logger.With("component", "http"),
	}
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Settings{
		TableNumberMin:  kernel.TableNumberMin,
		TableNumberMax:  kernel.TableNumberMax,
		TableNumberHint: kernel.TableNumberHint(),
	})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	products, err := s.h.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}
	return ctx.JSON(http.StatusOK, response)
}
