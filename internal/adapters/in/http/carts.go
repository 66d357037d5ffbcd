package http

import (
	"net/http"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateCart handles POST /api/v1/carts.
func (s *Server) CreateCart(ctx echo.Context) error {
	cartID := kernel.NewUUID()

	cmd, err := commands.NewCreateCartCommand(cartID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.CreateCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithCart(ctx, http.StatusCreated, cartID)
}

// GetCart handles GET /api/v1/carts/{cartId}.
func (s *Server) GetCart(ctx echo.Context, cartId servers.CartId) error {
	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondWithCart(ctx, http.StatusOK, cartID)
}

// DiscardCart handles DELETE /api/v1/carts/{cartId}.
func (s *Server) DiscardCart(ctx echo.Context, cartId servers.CartId) error {
	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDiscardCartCommand(cartID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.DiscardCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartLine handles POST /api/v1/carts/{cartId}/lines.
func (s *Server) AddCartLine(ctx echo.Context, cartId servers.CartId) error {
	var body servers.AddCartLineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddCartProductCommand(cartID, body.ProductId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.AddCartProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithCart(ctx, http.StatusOK, cartID)
}

// SetCartLineQuantity handles PUT /api/v1/carts/{cartId}/lines/{productId}.
func (s *Server) SetCartLineQuantity(ctx echo.Context, cartId servers.CartId, productId servers.ProductId) error {
	var body servers.SetCartLineQuantityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSetCartLineQuantityCommand(cartID, productId, body.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.SetCartLineQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithCart(ctx, http.StatusOK, cartID)
}

// RemoveCartLine handles DELETE /api/v1/carts/{cartId}/lines/{productId}.
func (s *Server) RemoveCartLine(ctx echo.Context, cartId servers.CartId, productId servers.ProductId) error {
	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartProductCommand(cartID, productId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.RemoveCartProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return s.respondWithCart(ctx, http.StatusOK, cartID)
}

// SubmitCart handles POST /api/v1/carts/{cartId}/submit. Only one submission per cart may
// be in flight; a concurrent second one gets 409.
func (s *Server) SubmitCart(ctx echo.Context, cartId servers.CartId) error {
	var body servers.SubmitCartJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cartID, err := toKernelUUID(cartId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if _, busy := s.submitting.LoadOrStore(cartID, struct{}{}); busy {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Cart is already being submitted",
		})
	}
	defer s.submitting.Delete(cartID)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(cartID, orderID, body.TableNumber)
	if err != nil {
		return s.writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.h.SubmitOrder.Handle(reqCtx, cmd); err != nil {
		return s.writeError(ctx, err)
	}

	s.logger.InfoContext(reqCtx, "order placed",
		"order_id", orderID.String(),
		"cart_id", cartID.String(),
		"table", body.TableNumber,
	)
	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

func (s *Server) respondWithCart(ctx echo.Context, status int, cartID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(status, toCart(view))
}
