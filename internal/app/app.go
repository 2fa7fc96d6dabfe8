package app

import (
	"context"
	"os"
	"strconv"

	"gorm.io/gorm"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/adapters/store/sqlite"
	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/usecase"
)

// App owns all process-wide state: the store, the catalog, the cart and the
// backup serializer. Presentation code receives an *App and calls through
// it; there are no package-level singletons.
type App struct {
	DB      *gorm.DB
	Store   domain.KVStore
	Catalog *usecase.Catalog
	Cart    *usecase.Cart
	Backup  *usecase.Backup

	adminPass string
}

// New wires the application on top of an opened gorm connection, seeds the
// first-run catalog and loads the persisted cart.
func New(ctx context.Context, db *gorm.DB) (*App, error) {
	quota := 0
	if v := os.Getenv("FLOR_QUOTA_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			quota = n
		}
	}
	store, err := sqlite.New(db, quota)
	if err != nil {
		return nil, err
	}

	catalog := usecase.NewCatalog(store)
	if err := catalog.Seed(ctx); err != nil {
		return nil, err
	}

	pass := os.Getenv("FLOR_ADMIN_PASS")
	if pass == "" {
		pass = "flor2024"
	}

	return &App{
		DB:        db,
		Store:     store,
		Catalog:   catalog,
		Cart:      usecase.NewCart(ctx, store, catalog),
		Backup:    usecase.NewBackup(store, catalog),
		adminPass: pass,
	}, nil
}

// CheckPassphrase compares the shared admin passphrase. The secret lives
// beside the data it guards, so this gates the admin screens against casual
// use only; it is not an access-control boundary.
func (a *App) CheckPassphrase(s string) bool {
	return s == a.adminPass
}
