package domain

import "context"

// Storage keys. One serialized collection or object per key, all under the
// flor_sb_ namespace. KeyVersion gates first-run seeding; KeyLastBackup is
// informational only.
const (
	KeyPrefix     = "flor_sb_"
	KeyProducts   = "flor_sb_products_v2"
	KeyCategories = "flor_sb_categories_v2"
	KeySlides     = "flor_sb_slides_v2"
	KeyCart       = "flor_sb_cart_v2"
	KeySettings   = "flor_sb_settings_v2"
	KeyVersion    = "flor_sb_version"
	KeyLastBackup = "flor_sb_last_backup"
)

// SchemaVersion is written to KeyVersion after seeding and stamped on
// exported backup documents.
const SchemaVersion = "2.0"

// KVStore is the persistence port. Every durable byte of the application
// goes through it. Set returns ErrStorageQuotaExceeded when the write would
// overflow the configured budget.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// UTF16Bytes reports the size of s counted the way the original storage
// substrate did: two bytes per UTF-16 code unit, four for characters outside
// the basic plane.
func UTF16Bytes(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 4
		} else {
			n += 2
		}
	}
	return n
}
