package domain

import (
	"strings"

	"github.com/gosimple/slug"
)

// Category groups products. ID is the slug derived from the name at creation
// and is what products reference.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// CategorySlug derives the stable id for a category name: lowercased,
// diacritics stripped, non-alphanumeric runs collapsed, underscores as
// separators. "Rosas Rojas" and "rosas-rojas" map to the same id.
func CategorySlug(name string) string {
	return strings.ReplaceAll(slug.Make(name), "-", "_")
}
