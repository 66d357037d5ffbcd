package jobs

import (
	"context"
	"log/slog"
	"time"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const CartSweeperSchedule = "0 * * * * *"

type sweepIdleCartsHandler interface {
	Handle(ctx context.Context, cmd commands.SweepIdleCartsCommand) (int, error)
}

// CartSweeperJob discards carts abandoned at a table.
type CartSweeperJob struct {
	handler sweepIdleCartsHandler
	idleFor time.Duration
	metrics *metrics.OrderMetrics
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartSweeperJob creates the sweeper. Carts not saved for idleFor are removed.
func NewCartSweeperJob(
	handler sweepIdleCartsHandler,
	idleFor time.Duration,
	m *metrics.OrderMetrics,
	logger *slog.Logger,
) *CartSweeperJob {
	return &CartSweeperJob{
		handler: handler,
		idleFor: idleFor,
		metrics: m,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_sweeper_job"),
	}
}

// Run performs one sweep.
func (j *CartSweeperJob) Run(ctx context.Context) {
	cmd, err := commands.NewSweepIdleCartsCommand(j.idleFor)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart sweeper is misconfigured", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart sweep failed", "error", err)
		return
	}
	if removed == 0 {
		return
	}

	j.metrics.CartsSwept.Add(float64(removed))
	j.logger.InfoContext(ctx, "Idle carts discarded", "count", removed, "idle_for", j.idleFor.String())
}

func (j *CartSweeperJob) Start() error {
	_, err := j.cron.AddFunc(CartSweeperSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart sweeper job started", "idle_for", j.idleFor.String())
	return nil
}

func (j *CartSweeperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart sweeper job stopped")
}
