package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/core/domain/services"
	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/errs"
)

const maxCartConsumeAttempts = 3

// SubmitOrderCommandHandler validates a cart, stores the resulting order and then takes
// the ordered quantities out of the cart.
//
// Any order-store failure is returned as errs.PersistenceError and leaves the cart
// unchanged, so resubmitting the same cart is a safe retry. Once the order is committed
// the submit succeeds: a cart that cannot be updated afterwards is only logged, since
// reporting an error would invite a duplicate order. Products added to the cart while
// the order was being stored are kept.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	carts      ports.CartRepository
	checkout   services.Checkout
	now        func() time.Time
	logger     *slog.Logger
}

func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartRepository,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		checkout:   services.NewCheckout(),
		now:        time.Now,
		logger:     logger.With("component", "submit_order"),
	}
}

func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	o, err := h.checkout.PlaceOrderFromInput(c, cmd.TableInput(), cmd.OrderID(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return errs.NewPersistenceError("create order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit order", err)
	}

	if err = h.consumeCart(ctx, cmd.CartID(), o.Lines()); err != nil {
		h.logger.ErrorContext(ctx, "Order placed but cart was not updated",
			"order_id", o.ID().String(),
			"cart_id", cmd.CartID().String(),
			"error", err,
		)
	}

	return nil
}

// consumeCart removes the ordered quantities from a freshly loaded cart, retrying when
// the cart was edited concurrently. A discarded cart needs no update.
func (h SubmitOrderCommandHandler) consumeCart(ctx context.Context, cartID kernel.UUID, lines []order.Line) error {
	var err error
	for range maxCartConsumeAttempts {
		c, getErr := h.carts.Get(ctx, cartID)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return nil
		}
		if getErr != nil {
			return getErr
		}

		for _, l := range lines {
			c.Consume(l.ProductID(), l.Quantity())
		}

		err = h.carts.Save(ctx, c)
		switch {
		case err == nil, errors.Is(err, errs.ErrObjectNotFound):
			return nil
		case !errors.Is(err, errs.ErrVersionIsInvalid):
			return err
		}
	}
	return err
}
