package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

var (
	ErrSweepIdleCartsCommandIsNotConstructed = errors.New(
		"SweepIdleCartsCommand must be created via NewSweepIdleCartsCommand constructor",
	)
)

// SweepIdleCartsCommand discards carts nobody touched for IdleFor.
type SweepIdleCartsCommand struct {
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewSweepIdleCartsCommand(idleFor time.Duration) (SweepIdleCartsCommand, error) {
	if idleFor <= 0 {
		return SweepIdleCartsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"idleFor", fmt.Errorf("%s is not greater than 0", idleFor))
	}
	return SweepIdleCartsCommand{idleFor: idleFor, guard: guard.NewConstructorGuard()}, nil
}

func (c SweepIdleCartsCommand) Validate() error {
	return c.guard.Validate(ErrSweepIdleCartsCommandIsNotConstructed)
}

func (c SweepIdleCartsCommand) IdleFor() time.Duration {
	return c.idleFor
}

// SweepIdleCartsCommandHandler removes abandoned carts and reports how many were removed.
type SweepIdleCartsCommandHandler struct {
	carts ports.CartRepository
	now   func() time.Time
}

func NewSweepIdleCartsCommandHandler(carts ports.CartRepository) SweepIdleCartsCommandHandler {
	return SweepIdleCartsCommandHandler{carts: carts, now: time.Now}
}

func (h SweepIdleCartsCommandHandler) Handle(ctx context.Context, cmd SweepIdleCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.carts.DeleteIdleSince(ctx, h.now().Add(-cmd.IdleFor()))
}
