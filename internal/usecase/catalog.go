package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Catalog is the entity repository: CRUD plus validation for products,
// categories and slides, the settings singleton, first-run seeding and
// storage stats. Every mutation reads the full collection, changes the
// in-memory copy and writes the whole collection back, so each operation is
// atomic with respect to its one key.
type Catalog struct {
	store domain.KVStore

	// injectable for deterministic tests
	now   func() time.Time
	newID func() string
}

func NewCatalog(store domain.KVStore) *Catalog {
	return &Catalog{store: store, now: time.Now, newID: uuid.NewString}
}

// readList decodes the collection stored under key. Corrupt or unreadable
// content is treated as an absent collection: logged and replaced with an
// empty list, never surfaced as an error.
func readList[T any](ctx context.Context, store domain.KVStore, key string) []T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("lectura fallida, usando colección vacía")
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		log.Warn().Err(err).Str("key", key).Msg("colección corrupta, usando colección vacía")
		return []T{}
	}
	return list
}

func writeList[T any](ctx context.Context, store domain.KVStore, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		if errors.Is(err, domain.ErrStorageQuotaExceeded) {
			return err
		}
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

// --- Productos ---

func (c *Catalog) Products(ctx context.Context) []domain.Product {
	return readList[domain.Product](ctx, c.store, domain.KeyProducts)
}

func (c *Catalog) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range c.Products(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (c *Catalog) AddProduct(ctx context.Context, d domain.ProductDraft) (*domain.Product, error) {
	p := domain.Product{
		ID:               c.newID(),
		Name:             d.Name,
		Category:         d.Category,
		Description:      d.Description,
		Price:            d.Price,
		SeasonalPrice:    d.SeasonalPrice,
		UseSeasonalPrice: d.UseSeasonalPrice,
		Image:            d.Image,
		IsActive:         d.IsActive,
		CreatedAt:        c.now().UnixMilli(),
	}
	list := append(c.Products(ctx), p)
	if err := writeList(ctx, c.store, domain.KeyProducts, list); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	list := c.Products(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		patch.Apply(&list[i])
		list[i].UpdatedAt = c.now().UnixMilli()
		if err := writeList(ctx, c.store, domain.KeyProducts, list); err != nil {
			return nil, err
		}
		return &list[i], nil
	}
	return nil, domain.ErrNotFound
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	list := c.Products(ctx)
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		return domain.ErrNotFound
	}
	return writeList(ctx, c.store, domain.KeyProducts, kept)
}

// ToggleProductStatus flips the active flag of a product.
func (c *Catalog) ToggleProductStatus(ctx context.Context, id string) (*domain.Product, error) {
	list := c.Products(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].IsActive = !list[i].IsActive
		list[i].UpdatedAt = c.now().UnixMilli()
		if err := writeList(ctx, c.store, domain.KeyProducts, list); err != nil {
			return nil, err
		}
		return &list[i], nil
	}
	return nil, domain.ErrNotFound
}

// --- Categorías ---

func (c *Catalog) Categories(ctx context.Context) []domain.Category {
	return readList[domain.Category](ctx, c.store, domain.KeyCategories)
}

// AddCategory derives the slug id from name and fails with
// ErrDuplicateCategory when it collides with an existing category.
func (c *Catalog) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	id := domain.CategorySlug(name)
	if id == "" {
		return nil, errors.New("nombre vacío")
	}
	list := c.Categories(ctx)
	for _, cat := range list {
		if cat.ID == id {
			return nil, domain.ErrDuplicateCategory
		}
	}
	cat := domain.Category{ID: id, Name: name, CreatedAt: c.now().UnixMilli()}
	if err := writeList(ctx, c.store, domain.KeyCategories, append(list, cat)); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory refuses to remove a category any product still references,
// active or not.
func (c *Catalog) DeleteCategory(ctx context.Context, id string) error {
	for _, p := range c.Products(ctx) {
		if p.Category == id {
			return domain.ErrCategoryInUse
		}
	}
	list := c.Categories(ctx)
	kept := list[:0]
	for _, cat := range list {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(list) {
		return domain.ErrNotFound
	}
	return writeList(ctx, c.store, domain.KeyCategories, kept)
}

// --- Slides ---

func (c *Catalog) Slides(ctx context.Context) []domain.Slide {
	return readList[domain.Slide](ctx, c.store, domain.KeySlides)
}

func (c *Catalog) AddSlide(ctx context.Context, d domain.SlideDraft) (*domain.Slide, error) {
	s := domain.Slide{
		ID:          c.newID(),
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		CreatedAt:   c.now().UnixMilli(),
	}
	if err := writeList(ctx, c.store, domain.KeySlides, append(c.Slides(ctx), s)); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Catalog) DeleteSlide(ctx context.Context, id string) error {
	list := c.Slides(ctx)
	kept := list[:0]
	for _, s := range list {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(list) {
		return domain.ErrNotFound
	}
	return writeList(ctx, c.store, domain.KeySlides, kept)
}

// --- Configuración ---

func (c *Catalog) Settings(ctx context.Context) domain.Settings {
	s := domain.DefaultSettings()
	raw, ok, err := c.store.Get(ctx, domain.KeySettings)
	if err != nil || !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Warn().Err(err).Msg("configuración corrupta, usando valores por defecto")
		return domain.DefaultSettings()
	}
	return s
}

func (c *Catalog) SaveSettings(ctx context.Context, s domain.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializar configuración: %w", err)
	}
	return c.store.Set(ctx, domain.KeySettings, string(raw))
}

// --- Estadísticas y mantenimiento ---

type Stats struct {
	TotalProducts   int
	ActiveProducts  int
	TotalCategories int
	TotalSlides     int
	StorageBytes    int
	StorageUsed     string
}

// Stats counts the catalog and sums the persisted size of every key in the
// application namespace, two bytes per UTF-16 code unit.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	st := Stats{}
	products := c.Products(ctx)
	st.TotalProducts = len(products)
	for _, p := range products {
		if p.IsActive {
			st.ActiveProducts++
		}
	}
	st.TotalCategories = len(c.Categories(ctx))
	st.TotalSlides = len(c.Slides(ctx))

	keys, err := c.store.Keys(ctx)
	if err != nil {
		return st, err
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, domain.KeyPrefix) {
			continue
		}
		v, ok, err := c.store.Get(ctx, k)
		if err != nil || !ok {
			continue
		}
		st.StorageBytes += domain.UTF16Bytes(v)
	}
	st.StorageUsed = formatBytes(st.StorageBytes)
	return st, nil
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// ClearImages strips every stored product and slide image. It is the
// remediation path when the store fills up.
func (c *Catalog) ClearImages(ctx context.Context) error {
	products := c.Products(ctx)
	for i := range products {
		products[i].Image = ""
	}
	if err := writeList(ctx, c.store, domain.KeyProducts, products); err != nil {
		return err
	}
	slides := c.Slides(ctx)
	for i := range slides {
		slides[i].Image = ""
	}
	return writeList(ctx, c.store, domain.KeySlides, slides)
}

// Reset removes every key in the application namespace, version marker
// included, so the next startup reseeds from scratch.
func (c *Catalog) Reset(ctx context.Context) error {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, domain.KeyPrefix) {
			continue
		}
		if err := c.store.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// LastBackup reports when the catalog was last exported, if ever.
func (c *Catalog) LastBackup(ctx context.Context) (time.Time, bool) {
	raw, ok, err := c.store.Get(ctx, domain.KeyLastBackup)
	if err != nil || !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
