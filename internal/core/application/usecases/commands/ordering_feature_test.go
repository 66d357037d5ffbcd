package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"tableorders/internal/adapters/out/memory/cartstore"
	"tableorders/internal/adapters/out/menufile"
	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/core/ports"
	"tableorders/internal/pkg/errs"

	"github.com/cucumber/godog"
)

// orderBook keeps orders in memory and serves as its own unit of work.
type orderBook struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
}

func (b *orderBook) Create() commands.OrderUoW               { return b }
func (b *orderBook) Begin(context.Context) error             { return nil }
func (b *orderBook) Commit(context.Context) error            { return nil }
func (b *orderBook) Rollback(context.Context) error          { return nil }
func (b *orderBook) OrderRepository() ports.OrderRepository { return b }

func (b *orderBook) Add(_ context.Context, o *order.Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[o.ID()] = o
	return nil
}

func (b *orderBook) Update(_ context.Context, o *order.Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	b.orders[o.ID()] = o
	return nil
}

func (b *orderBook) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	s := o.Snapshot()
	return order.RestoreOrder(s.ID, s.Table, s.Lines, s.CreatedAt, s.Status, o.Version())
}

func (b *orderBook) List(context.Context) ([]*order.Order, error) {
	return nil, errors.New("not used")
}

type orderingTestContext struct {
	ctx     context.Context
	carts   *cartstore.Store
	menu    ports.MenuRepository
	orders  *orderBook
	cartID  kernel.UUID
	orderID kernel.UUID
	err     error
}

func (c *orderingTestContext) reset() {
	c.ctx = context.Background()
	c.carts = cartstore.NewStore()
	c.menu = nil
	c.orders = &orderBook{orders: make(map[kernel.UUID]*order.Order)}
	c.cartID = kernel.UUID{}
	c.orderID = kernel.UUID{}
	c.err = nil
}

func (c *orderingTestContext) theMenu(table *godog.Table) error {
	products := make([]menu.Product, 0, len(table.Rows))
	for _, row := range table.Rows[1:] {
		price, err := kernel.MoneyFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		p, err := menu.NewProduct(row.Cells[0].Value, row.Cells[1].Value, price, "")
		if err != nil {
			return err
		}
		products = append(products, p)
	}

	catalog, err := menufile.NewCatalog(products)
	if err != nil {
		return err
	}
	c.menu = catalog
	return nil
}

func (c *orderingTestContext) anOpenCart() error {
	c.cartID = kernel.NewUUID()
	cmd, err := commands.NewCreateCartCommand(c.cartID)
	if err != nil {
		return err
	}
	return commands.NewCreateCartCommandHandler(c.carts).Handle(c.ctx, cmd)
}

func (c *orderingTestContext) iAddToTheCart(productID string) error {
	cmd, err := commands.NewAddCartProductCommand(c.cartID, productID)
	if err != nil {
		return err
	}
	return commands.NewAddCartProductCommandHandler(c.carts, c.menu).Handle(c.ctx, cmd)
}

func (c *orderingTestContext) iSetTheQuantityOfTo(productID, quantity string) error {
	cmd, err := commands.NewSetCartLineQuantityCommand(c.cartID, productID, quantity)
	if err != nil {
		return err
	}
	return commands.NewSetCartLineQuantityCommandHandler(c.carts).Handle(c.ctx, cmd)
}

func (c *orderingTestContext) iSubmitTheCartForTable(table string) error {
	c.orderID = kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(c.cartID, c.orderID, table)
	if err != nil {
		return err
	}
	c.err = commands.NewSubmitOrderCommandHandler(c.orders, c.carts, nil).Handle(c.ctx, cmd)
	return nil
}

func (c *orderingTestContext) aPlacedOrder() error {
	if err := c.iAddToTheCart("A"); err != nil {
		return err
	}
	if err := c.iSubmitTheCartForTable("7"); err != nil {
		return err
	}
	return c.err
}

func (c *orderingTestContext) iChangeTheOrderStatusTo(status string) error {
	cmd, err := commands.NewAdvanceOrderStatusCommand(c.orderID, status)
	if err != nil {
		return err
	}
	c.err = commands.NewAdvanceOrderStatusCommandHandler(c.orders).Handle(c.ctx, cmd)
	return nil
}

func (c *orderingTestContext) currentCart() (*cart.Cart, error) {
	return c.carts.Get(c.ctx, c.cartID)
}

func (c *orderingTestContext) theCartHasLines(n int) error {
	current, err := c.currentCart()
	if err != nil {
		return err
	}
	if got := len(current.Lines()); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *orderingTestContext) theLineHasQuantity(productID string, quantity int) error {
	current, err := c.currentCart()
	if err != nil {
		return err
	}
	line, ok := current.Line(productID)
	if !ok {
		return fmt.Errorf("no line for %q", productID)
	}
	if line.Quantity() != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, line.Quantity())
	}
	return nil
}

func (c *orderingTestContext) theCartTotalIs(total string) error {
	current, err := c.currentCart()
	if err != nil {
		return err
	}
	if got := current.Total().String(); got != total {
		return fmt.Errorf("expected total %s, got %s", total, got)
	}
	return nil
}

func (c *orderingTestContext) theCartHoldsItems(n int) error {
	current, err := c.currentCart()
	if err != nil {
		return err
	}
	if got := current.ItemCount(); got != n {
		return fmt.Errorf("expected %d items, got %d", n, got)
	}
	return nil
}

func (c *orderingTestContext) theSubmissionIsAccepted() error {
	if c.err != nil {
		return fmt.Errorf("expected submission to succeed, got %v", c.err)
	}
	return nil
}

func (c *orderingTestContext) theSubmissionIsRejectedWith(reason string) error {
	var validationErr *errs.ValidationError
	if !errors.As(c.err, &validationErr) {
		return fmt.Errorf("expected ValidationError, got %v", c.err)
	}
	if string(validationErr.Reason) != reason {
		return fmt.Errorf("expected reason %s, got %s", reason, validationErr.Reason)
	}
	if _, err := c.orders.Get(c.ctx, c.orderID); !errors.Is(err, errs.ErrObjectNotFound) {
		return errors.New("a rejected submission must not store an order")
	}
	return nil
}

func (c *orderingTestContext) placedOrder() (*order.Order, error) {
	return c.orders.Get(c.ctx, c.orderID)
}

func (c *orderingTestContext) theOrderIsForTable(table string) error {
	o, err := c.placedOrder()
	if err != nil {
		return err
	}
	if got := strconv.Itoa(o.Table().Int()); got != table {
		return fmt.Errorf("expected table %s, got %s", table, got)
	}
	return nil
}

func (c *orderingTestContext) theOrderTotalIs(total string) error {
	o, err := c.placedOrder()
	if err != nil {
		return err
	}
	if got := o.Total().String(); got != total {
		return fmt.Errorf("expected order total %s, got %s", total, got)
	}
	return nil
}

func (c *orderingTestContext) theOrderStatusIs(status string) error {
	o, err := c.placedOrder()
	if err != nil {
		return err
	}
	if got := o.Status().String(); got != status {
		return fmt.Errorf("expected status %s, got %s", status, got)
	}
	return nil
}

func (c *orderingTestContext) theStatusChangeIsRefused() error {
	if !errors.Is(c.err, errs.ErrIllegalTransition) {
		return fmt.Errorf("expected an illegal transition, got %v", c.err)
	}
	c.err = nil
	return nil
}

func InitializeOrderingScenario(ctx *godog.ScenarioContext) {
	tc := &orderingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the menu:$`, tc.theMenu)
	ctx.Step(`^an open cart$`, tc.anOpenCart)
	ctx.Step(`^a placed order$`, tc.aPlacedOrder)

	// When steps
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I set the quantity of "([^"]*)" to "([^"]*)"$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^I submit the cart for table "([^"]*)"$`, tc.iSubmitTheCartForTable)
	ctx.Step(`^I change the order status to "([^"]*)"$`, tc.iChangeTheOrderStatusTo)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^the line "([^"]*)" has quantity (\d+)$`, tc.theLineHasQuantity)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart holds (\d+) items$`, tc.theCartHoldsItems)
	ctx.Step(`^the submission is accepted$`, tc.theSubmissionIsAccepted)
	ctx.Step(`^the submission is rejected with "([^"]*)"$`, tc.theSubmissionIsRejectedWith)
	ctx.Step(`^the order is for table (\d+)$`, tc.theOrderIsForTable)
	ctx.Step(`^the order total is "([^"]*)"$`, tc.theOrderTotalIs)
	ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
	ctx.Step(`^the status change is refused$`, tc.theStatusChangeIsRefused)
}

func TestOrderingFeature(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeOrderingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../../../features/ordering.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
