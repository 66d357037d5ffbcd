package order

import (
	"slices"
)

// DefaultHistoryLimit is how many delivered orders the board shows when no limit is given.
const DefaultHistoryLimit = 6

// StatusCounts holds the number of orders in each lifecycle status.
type StatusCounts struct {
	counts map[Status]int
}

func NewStatusCounts() StatusCounts {
	return StatusCounts{counts: make(map[Status]int, len(Statuses()))}
}

// Add increases the count of status by n. Invalid statuses are ignored.
func (c *StatusCounts) Add(status Status, n int) {
	if status.Validate() != nil {
		return
	}
	if c.counts == nil {
		c.counts = make(map[Status]int, len(Statuses()))
	}
	c.counts[status] += n
}

func (c StatusCounts) Of(status Status) int {
	return c.counts[status]
}

func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Board is the read-side projection shown on the service dashboard: counts per status,
// the orders still being worked on and the most recent deliveries.
type Board struct {
	counts  StatusCounts
	active  []*Order
	history []*Order
}

// NewBoard projects orders. Active orders are sorted oldest first; history holds delivered
// orders newest first, at most historyLimit of them (DefaultHistoryLimit when historyLimit <= 0).
func NewBoard(orders []*Order, historyLimit int) Board {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	b := Board{
		counts:  NewStatusCounts(),
		active:  make([]*Order, 0),
		history: make([]*Order, 0),
	}
	for _, o := range orders {
		b.counts.Add(o.Status(), 1)
		if o.Status().IsTerminal() {
			b.history = append(b.history, o)
		} else {
			b.active = append(b.active, o)
		}
	}

	slices.SortStableFunc(b.active, func(x, y *Order) int {
		return x.CreatedAt().Compare(y.CreatedAt())
	})
	slices.SortStableFunc(b.history, func(x, y *Order) int {
		return y.CreatedAt().Compare(x.CreatedAt())
	})
	if len(b.history) > historyLimit {
		b.history = b.history[:historyLimit]
	}

	return b
}

func (b Board) Counts() StatusCounts {
	return b.counts
}

// Active returns orders that are not Delivered.
func (b Board) Active() []*Order {
	return slices.Clone(b.active)
}

// History returns the most recent Delivered orders.
func (b Board) History() []*Order {
	return slices.Clone(b.history)
}
