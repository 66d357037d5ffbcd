// Package cartstore keeps carts in process memory. Carts are short-lived shopping sessions,
// so losing them on restart is acceptable; placed orders live in the order store.
package cartstore

import (
	"context"
	"sync"
	"time"

	"tableorders/internal/core/domain/model/cart"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
)

type entry struct {
	cart      *cart.Cart
	touchedAt time.Time
}

// Store implements ports.CartRepository. Every read returns a clone and every write stores
// one, so callers never share a *cart.Cart.
type Store struct {
	mu    sync.RWMutex
	carts map[kernel.UUID]entry
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		carts: make(map[kernel.UUID]entry),
		now:   time.Now,
	}
}

// WithClock replaces the time source used to stamp saves.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Add stores a new cart. Adding an identifier twice is an error.
func (s *Store) Add(_ context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[c.ID()]; ok {
		return errs.NewValueIsInvalidError("cartId")
	}
	s.carts[c.ID()] = entry{cart: c.Clone(), touchedAt: s.now()}
	return nil
}

func (s *Store) Get(_ context.Context, id kernel.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.carts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", id.String())
	}
	return e.cart.Clone(), nil
}

// Save replaces a stored cart if it was loaded at the stored version, and bumps the
// version. A stale cart returns VersionIsInvalidError; a discarded one ObjectNotFoundError.
func (s *Store) Save(_ context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[c.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("cart", c.ID().String())
	}
	if e.cart.Version() != c.Version() {
		return errs.NewVersionIsInvalidError("cart")
	}
	s.carts[c.ID()] = entry{cart: c.WithVersion(c.Version() + 1), touchedAt: s.now()}
	return nil
}

func (s *Store) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[id]; !ok {
		return errs.NewObjectNotFoundError("cart", id.String())
	}
	delete(s.carts, id)
	return nil
}

// DeleteIdleSince drops carts whose last Add or Save happened before cutoff.
func (s *Store) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.carts {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if e.touchedAt.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many carts are open.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
