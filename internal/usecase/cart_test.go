package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/adapters/store/memory"
	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

func cartFixture(t *testing.T) (context.Context, *memory.Store, *Catalog, *Cart) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	cat := newTestCatalog(store)
	return ctx, store, cat, NewCart(ctx, store, cat)
}

func TestCartAdd_SnapshotsEffectivePrice(t *testing.T) {
	ctx, _, cat, cart := cartFixture(t)

	p, err := cat.AddProduct(ctx, domain.ProductDraft{
		Name: "Girasoles", Price: 12000, SeasonalPrice: 10000,
		UseSeasonalPrice: true, IsActive: true, Image: "data:image/jpeg;base64,AAAA",
	})
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, p.ID))
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10000, lines[0].Price, "seasonal price applies at add time")
	assert.Equal(t, "Girasoles", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)

	// editing the product later does not rewrite the snapshot
	price := 20000
	name := "Girasoles Premium"
	_, err = cat.UpdateProduct(ctx, p.ID, domain.ProductPatch{Price: &price, Name: &name})
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, p.ID))
	lines = cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 10000, lines[0].Price)
	assert.Equal(t, "Girasoles", lines[0].Name)
}

func TestCartAdd_UnavailableProduct(t *testing.T) {
	ctx, _, cat, cart := cartFixture(t)

	err := cart.Add(ctx, "desconocido")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Ramo", Price: 15000, IsActive: false})
	require.NoError(t, err)
	assert.ErrorIs(t, cart.Add(ctx, p.ID), domain.ErrNotFound)
	assert.Empty(t, cart.Lines())
}

func TestCartUpdateQuantity_FloorRemovesLine(t *testing.T) {
	ctx, _, cat, cart := cartFixture(t)

	p, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Ramo", Price: 15000, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, p.ID))

	require.NoError(t, cart.UpdateQuantity(ctx, p.ID, -1))
	assert.Empty(t, cart.Lines(), "quantity reaching zero removes the line")

	// missing line is a no-op
	require.NoError(t, cart.UpdateQuantity(ctx, p.ID, 1))
	assert.Empty(t, cart.Lines())
}

func TestCartSubtotal(t *testing.T) {
	ctx, _, cat, cart := cartFixture(t)

	a, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Ramo", Price: 15000, IsActive: true})
	require.NoError(t, err)
	b, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Orquídea", Price: 25000, IsActive: true})
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, a.ID))
	require.NoError(t, cart.Add(ctx, a.ID))
	require.NoError(t, cart.Add(ctx, b.ID))

	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 2*15000+25000, cart.Subtotal())
	assert.Equal(t, cart.Subtotal(), cart.Total())

	require.NoError(t, cart.Remove(ctx, a.ID))
	assert.Equal(t, 25000, cart.Subtotal())
}

func TestCartMirror_SurvivesRestart(t *testing.T) {
	ctx, store, cat, cart := cartFixture(t)

	p, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Ramo", Price: 15000, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, p.ID))
	require.NoError(t, cart.Add(ctx, p.ID))

	reloaded := NewCart(ctx, store, cat)
	require.Len(t, reloaded.Lines(), 1)
	assert.Equal(t, 2, reloaded.Lines()[0].Quantity)
}

func TestCartClear_RemovesMirror(t *testing.T) {
	ctx, store, cat, cart := cartFixture(t)

	p, err := cat.AddProduct(ctx, domain.ProductDraft{Name: "Ramo", Price: 15000, IsActive: true})
	require.NoError(t, err)
	require.NoError(t, cart.Add(ctx, p.ID))

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Lines())
	_, ok, err := store.Get(ctx, domain.KeyCart)
	require.NoError(t, err)
	assert.False(t, ok, "persisted mirror is gone")
}

func TestCartCorruptMirror_StartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	cat := newTestCatalog(store)
	require.NoError(t, store.Set(ctx, domain.KeyCart, "no json"))

	cart := NewCart(ctx, store, cat)
	assert.Empty(t, cart.Lines())
}
