package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Document is the portable backup format, also the accepted import format:
// importing an unmodified export restores an identical catalog. Sections
// other than products may be omitted on import to leave the current state
// untouched.
type Document struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Slides     []domain.Slide    `json:"slides"`
	Settings   *domain.Settings  `json:"settings,omitempty"`
}

// ImportResult reports what an import did. NeedsConfirmation is set instead
// of overwriting when the catalog already holds products and the caller did
// not confirm; the caller prompts and re-invokes with confirmed=true.
type ImportResult struct {
	NeedsConfirmation bool
	Products          int
	Categories        int
	Slides            int
}

// Backup snapshots the catalog to a Document and restores from one.
type Backup struct {
	store   domain.KVStore
	catalog *Catalog

	now func() time.Time
}

func NewBackup(store domain.KVStore, catalog *Catalog) *Backup {
	return &Backup{store: store, catalog: catalog, now: time.Now}
}

// Export snapshots the full repository state and records the backup
// timestamp. The timestamp write is informational; its failure does not
// invalidate the snapshot.
func (b *Backup) Export(ctx context.Context) *Document {
	settings := b.catalog.Settings(ctx)
	doc := &Document{
		Version:    domain.SchemaVersion,
		ExportedAt: b.now().UTC().Format(time.RFC3339),
		Products:   b.catalog.Products(ctx),
		Categories: b.catalog.Categories(ctx),
		Slides:     b.catalog.Slides(ctx),
		Settings:   &settings,
	}
	if err := b.store.Set(ctx, domain.KeyLastBackup, doc.ExportedAt); err != nil {
		log.Warn().Err(err).Msg("no se pudo registrar la fecha de respaldo")
	}
	return doc
}

// ExportJSON renders the snapshot as an indented JSON document.
func (b *Backup) ExportJSON(ctx context.Context) ([]byte, error) {
	return json.MarshalIndent(b.Export(ctx), "", "  ")
}

// Import restores a backup document. The products section is mandatory;
// categories, slides and settings are each optional and, when absent, leave
// the corresponding current state alone.
//
// The store offers no cross-key atomicity: sections are written one by one,
// and a failure partway leaves earlier sections already applied. That state
// is reported, not hidden — the returned error names what was written.
func (b *Backup) Import(ctx context.Context, data []byte, confirmed bool) (*ImportResult, error) {
	var doc struct {
		Products   *[]domain.Product  `json:"products"`
		Categories *[]domain.Category `json:"categories"`
		Slides     *[]domain.Slide    `json:"slides"`
		Settings   *domain.Settings   `json:"settings"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImportFormat, err)
	}
	if doc.Products == nil {
		return nil, fmt.Errorf("%w: falta la lista de productos", domain.ErrInvalidImportFormat)
	}
	for _, p := range *doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: producto sin id", domain.ErrInvalidImportFormat)
		}
	}

	if len(b.catalog.Products(ctx)) > 0 && !confirmed {
		return &ImportResult{NeedsConfirmation: true}, nil
	}

	res := &ImportResult{Products: len(*doc.Products)}
	applied := []string{}
	fail := func(err error) error {
		return fmt.Errorf("importación incompleta (secciones ya escritas: %s): %w",
			strings.Join(applied, ", "), err)
	}

	if err := writeList(ctx, b.store, domain.KeyProducts, *doc.Products); err != nil {
		return res, fail(err)
	}
	applied = append(applied, "productos")

	if doc.Categories != nil {
		if err := writeList(ctx, b.store, domain.KeyCategories, *doc.Categories); err != nil {
			return res, fail(err)
		}
		applied = append(applied, "categorías")
		res.Categories = len(*doc.Categories)
	}
	if doc.Slides != nil {
		if err := writeList(ctx, b.store, domain.KeySlides, *doc.Slides); err != nil {
			return res, fail(err)
		}
		applied = append(applied, "slides")
		res.Slides = len(*doc.Slides)
	}
	if doc.Settings != nil {
		if err := b.catalog.SaveSettings(ctx, *doc.Settings); err != nil {
			return res, fail(err)
		}
		applied = append(applied, "configuración")
	}

	log.Info().
		Int("productos", res.Products).
		Int("categorias", res.Categories).
		Int("slides", res.Slides).
		Msg("respaldo importado")
	return res, nil
}
