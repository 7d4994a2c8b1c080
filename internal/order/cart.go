package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Submitter sends a finished cart to the ordering API. Implemented by
// client.OrderAPI; a fake stands in for it in tests.
type Submitter interface {
	CreateOrder(ctx context.Context, cart []CartItem, user User) (uuid.UUID, error)
}

// Cart is a session-scoped shopping cart. It is constructed explicitly
// for one ordering session and cleared exactly once on successful
// checkout; nothing else empties it.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. Adding the same menu item again bumps
// the quantity and replaces the notes instead of duplicating the line.
func (c *Cart) Add(item CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.Status = StatusPending

	for i := range c.items {
		if c.items[i].Name == item.Name && c.items[i].Category == item.Category {
			c.items[i].Quantity += item.Quantity
			if item.Notes != "" {
				c.items[i].Notes = item.Notes
			}
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove drops the line with the given item id.
func (c *Cart) Remove(itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current cart lines.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Checkout submits the cart for the given user. The cart is cleared
// only after the submission succeeds; on failure it stays intact so the
// customer can retry.
func (c *Cart) Checkout(ctx context.Context, s Submitter, user User) (uuid.UUID, error) {
	items := c.Items()
	if len(items) == 0 {
		return uuid.Nil, fmt.Errorf("cart is empty")
	}

	id, err := s.CreateOrder(ctx, items, user)
	if err != nil {
		return uuid.Nil, err
	}

	c.Clear()
	return id, nil
}
