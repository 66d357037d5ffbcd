package cmd

import (
	"fmt"
	"io"
	"log/slog"

	httpadapter "tableorders/internal/adapters/in/http"
	"tableorders/internal/adapters/out/memory/cartstore"
	"tableorders/internal/adapters/out/messaging"
	"tableorders/internal/adapters/out/postgres"
	"tableorders/internal/adapters/out/postgres/orderrepo"
	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/ports"
	"tableorders/internal/jobs"
	"tableorders/internal/pkg/metrics"

	"gorm.io/gorm"
)

// EventPublisher is a ports.EventPublisher that holds a broker connection.
type EventPublisher interface {
	ports.EventPublisher
	io.Closer
}

// NewEventPublisher connects to the broker selected by EVENT_BROKER.
func NewEventPublisher(cfg Config, logger *slog.Logger) (EventPublisher, error) {
	switch cfg.EventBroker {
	case EventBrokerKafka:
		p, err := messaging.NewKafkaPublisher(messaging.ParseBrokers(cfg.KafkaBrokers), cfg.KafkaOrderEventsTopic)
		if err != nil {
			return nil, err
		}
		return p, nil
	case EventBrokerRabbitMQ:
		p, err := messaging.DialRabbitMQ(messaging.RabbitMQConfig{
			Host:     cfg.RabbitMQHost,
			Port:     cfg.RabbitMQPort,
			User:     cfg.RabbitMQUser,
			Password: cfg.RabbitMQPassword,
			Exchange: cfg.RabbitMQExchange,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case EventBrokerNone, "":
		return messaging.NewLogPublisher(logger), nil
	default:
		return nil, fmt.Errorf("unknown event broker %q", cfg.EventBroker)
	}
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	orders     *orderrepo.GormOrderRepository
	carts      *cartstore.Store
	menu       ports.MenuRepository
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	menu ports.MenuRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		orders:     orderrepo.NewGormOrderRepository(gormDB, nil),
		carts:      cartstore.NewStore(),
		menu:       menu,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.carts, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSweepIdleCartsCommandHandler() commands.SweepIdleCartsCommandHandler {
	return commands.NewSweepIdleCartsCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case served by the REST API.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateCart:          commands.NewCreateCartCommandHandler(c.carts),
		AddCartProduct:      commands.NewAddCartProductCommandHandler(c.carts, c.menu),
		SetCartLineQuantity: commands.NewSetCartLineQuantityCommandHandler(c.carts),
		RemoveCartProduct:   commands.NewRemoveCartProductCommandHandler(c.carts),
		DiscardCart:         commands.NewDiscardCartCommandHandler(c.carts),
		SubmitOrder:         c.CreateSubmitOrderCommandHandler(),
		AdvanceOrderStatus:  c.CreateAdvanceOrderStatusCommandHandler(),

		GetMenu:       queries.NewGetMenuQueryHandler(c.menu),
		GetCart:       queries.NewGetCartQueryHandler(c.carts),
		GetOrder:      queries.NewGetOrderQueryHandler(c.orders),
		ListOrders:    queries.NewListOrdersQueryHandler(c.orders),
		GetOrderBoard: queries.NewGetOrderBoardQueryHandler(c.orders),
		GetOrderStats: c.CreateGetOrderStatsQueryHandler(),
	}
}

func (c *CompositionRoot) NewServer() *httpadapter.Server {
	return httpadapter.NewServer(c.HTTPHandlers(), c.cfg.HistoryLimit, c.logger)
}

func (c *CompositionRoot) NewJobManager(orderMetrics *metrics.OrderMetrics) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCartSweeperJob(c.CreateSweepIdleCartsCommandHandler(), c.cfg.CartIdleTTL, orderMetrics, c.logger),
		jobs.NewOrderMetricsJob(c.CreateGetOrderStatsQueryHandler(), orderMetrics, c.logger),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
