package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Seed populates the starter catalog on a fresh namespace. The version
// marker gates it: once written, later startups are no-ops, so the seed runs
// at most once per store.
func (c *Catalog) Seed(ctx context.Context) error {
	_, ok, err := c.store.Get(ctx, domain.KeyVersion)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	now := c.now().UnixMilli()
	categories := []domain.Category{
		{ID: "rosas", Name: "Rosas", CreatedAt: now},
		{ID: "girasoles", Name: "Girasoles", CreatedAt: now},
		{ID: "orquideas", Name: "Orquídeas", CreatedAt: now},
		{ID: "ramos", Name: "Ramos", CreatedAt: now},
		{ID: "arreglos", Name: "Arreglos", CreatedAt: now},
	}
	products := []domain.Product{
		{
			ID: c.newID(), Name: "Ramo de Rosas Rojas", Category: "rosas",
			Description: "Docena de rosas rojas con follaje fresco",
			Price:       15000, IsActive: true, CreatedAt: now,
		},
		{
			ID: c.newID(), Name: "Girasoles de Temporada", Category: "girasoles",
			Description: "Media docena de girasoles recién cortados",
			Price:       12000, SeasonalPrice: 10000, UseSeasonalPrice: true,
			IsActive: true, CreatedAt: now,
		},
		{
			ID: c.newID(), Name: "Orquídea en Maceta", Category: "orquideas",
			Description: "Orquídea phalaenopsis lista para regalar",
			Price:       25000, IsActive: true, CreatedAt: now,
		},
	}
	slides := []domain.Slide{
		{
			ID: c.newID(), Title: "Flores Frescas Cada Día",
			Description: "Entregas el mismo día en Santa Bárbara y alrededores",
			CreatedAt:   now,
		},
		{
			ID: c.newID(), Title: "Temporada de Rosas",
			Description: "Precios especiales en ramos durante todo el mes",
			CreatedAt:   now,
		},
	}

	if err := writeList(ctx, c.store, domain.KeyCategories, categories); err != nil {
		return err
	}
	if err := writeList(ctx, c.store, domain.KeyProducts, products); err != nil {
		return err
	}
	if err := writeList(ctx, c.store, domain.KeySlides, slides); err != nil {
		return err
	}
	if err := c.SaveSettings(ctx, domain.DefaultSettings()); err != nil {
		return err
	}
	if err := c.store.Set(ctx, domain.KeyVersion, domain.SchemaVersion); err != nil {
		return err
	}
	log.Info().
		Int("categorias", len(categories)).
		Int("productos", len(products)).
		Int("slides", len(slides)).
		Msg("catálogo inicial creado")
	return nil
}
