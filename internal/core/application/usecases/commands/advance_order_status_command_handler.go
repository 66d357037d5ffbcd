package commands

import (
	"context"
	"errors"

	"tableorders/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler applies one lifecycle step to a stored order.
//
// Errors:
//   - errs.ObjectNotFoundError when the order does not exist
//   - errs.IllegalTransitionError when the target is not the next status
//   - errs.PersistenceError when the store fails, including a lost optimistic
//     concurrency race (the cause then wraps errs.ErrVersionIsInvalid)
//
// On every error the stored status is unchanged.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewPersistenceError("begin transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err != nil {
		return errs.NewPersistenceError("load order", err)
	}

	if err = o.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return errs.NewPersistenceError("update order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit order status", err)
	}

	return nil
}
