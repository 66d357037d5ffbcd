package jobs

import (
	"context"
	"log/slog"

	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const OrderMetricsSchedule = "*/15 * * * * *"

type orderStatsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.StatusCounts, error)
}

// OrderMetricsJob copies the order counts per status into the orders_by_status gauge.
type OrderMetricsJob struct {
	handler orderStatsHandler
	metrics *metrics.OrderMetrics
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOrderMetricsJob(handler orderStatsHandler, m *metrics.OrderMetrics, logger *slog.Logger) *OrderMetricsJob {
	return &OrderMetricsJob{
		handler: handler,
		metrics: m,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_metrics_job"),
	}
}

// Run refreshes the gauge once. On error the previous values are kept.
func (j *OrderMetricsJob) Run(ctx context.Context) {
	counts, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order metrics refresh failed", "error", err)
		return
	}

	for _, status := range order.Statuses() {
		j.metrics.ByStatus.WithLabelValues(status.String()).Set(float64(counts.Of(status)))
	}
}

func (j *OrderMetricsJob) Start() error {
	_, err := j.cron.AddFunc(OrderMetricsSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order metrics job started")
	return nil
}

func (j *OrderMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order metrics job stopped")
}
