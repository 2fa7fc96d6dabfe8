package usecase

import (
	"context"
	"fmt"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Cart is the order aggregator: an in-memory line list mirrored to the store
// on every mutation. Lines snapshot the product's name, image and effective
// price at add time; later product edits never rewrite existing lines.
type Cart struct {
	store   domain.KVStore
	catalog *Catalog
	lines   []domain.CartLine
}

// NewCart loads the persisted cart. A corrupt mirror starts empty.
func NewCart(ctx context.Context, store domain.KVStore, catalog *Catalog) *Cart {
	return &Cart{
		store:   store,
		catalog: catalog,
		lines:   readList[domain.CartLine](ctx, store, domain.KeyCart),
	}
}

// Add puts one unit of the product in the cart. An unknown or inactive
// product fails with ErrNotFound. Re-adding an existing line bumps its
// quantity without refreshing the snapshot.
func (c *Cart) Add(ctx context.Context, productID string) error {
	p, err := c.catalog.ProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("producto no disponible: %w", err)
	}
	if !p.IsActive {
		return fmt.Errorf("producto no disponible: %w", domain.ErrNotFound)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return c.persist(ctx)
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.EffectivePrice(),
		Image:     p.Image,
		Quantity:  1,
	})
	return c.persist(ctx)
}

// UpdateQuantity adds delta to a line's quantity and removes the line when
// the result drops to zero or below. A missing line is a no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			return c.Remove(ctx, productID)
		}
		return c.persist(ctx)
	}
	return nil
}

// Remove drops the matching line; no-op when absent.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
	return c.persist(ctx)
}

// Lines returns a copy of the current cart contents.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Count is the total unit count across all lines (the cart badge number).
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price × quantity over all lines. Shipping is computed by the
// checkout flow, not here.
func (c *Cart) Subtotal() int {
	total := 0
	for _, l := range c.lines {
		total += l.Price * l.Quantity
	}
	return total
}

// Total equals Subtotal; the checkout flow adds shipping on top.
func (c *Cart) Total() int { return c.Subtotal() }

// Clear empties the cart and removes the persisted mirror.
func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	return c.store.Remove(ctx, domain.KeyCart)
}

func (c *Cart) persist(ctx context.Context) error {
	if c.lines == nil {
		c.lines = []domain.CartLine{}
	}
	return writeList(ctx, c.store, domain.KeyCart, c.lines)
}
