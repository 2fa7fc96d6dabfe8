package domain

// Product is a catalog entry. Prices are integer colones. Image holds an
// embedded data URI produced by the imaging package, or "" when the product
// has no photo. Timestamps are epoch milliseconds, matching the stored v2
// collections.
type Product struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Price            int    `json:"price"`
	SeasonalPrice    int    `json:"seasonalPrice"`
	UseSeasonalPrice bool   `json:"useSeasonalPrice"`
	Image            string `json:"image,omitempty"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt,omitempty"`
}

// EffectivePrice resolves the seasonal override: the seasonal price applies
// only when the toggle is on and the value is set (0 means unset).
func (p Product) EffectivePrice() int {
	if p.UseSeasonalPrice && p.SeasonalPrice > 0 {
		return p.SeasonalPrice
	}
	return p.Price
}

// ProductDraft carries the caller-supplied fields for a new product. ID and
// CreatedAt are assigned by the catalog.
type ProductDraft struct {
	Name             string
	Category         string
	Description      string
	Price            int
	SeasonalPrice    int
	UseSeasonalPrice bool
	Image            string
	IsActive         bool
}

// ProductPatch is a partial update. Nil fields leave the stored value
// untouched; a non-nil empty Image clears the photo.
type ProductPatch struct {
	Name             *string
	Category         *string
	Description      *string
	Price            *int
	SeasonalPrice    *int
	UseSeasonalPrice *bool
	Image            *string
	IsActive         *bool
}

// Apply merges the patch into p field by field.
func (pt ProductPatch) Apply(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
	if pt.SeasonalPrice != nil {
		p.SeasonalPrice = *pt.SeasonalPrice
	}
	if pt.UseSeasonalPrice != nil {
		p.UseSeasonalPrice = *pt.UseSeasonalPrice
	}
	if pt.Image != nil {
		p.Image = *pt.Image
	}
	if pt.IsActive != nil {
		p.IsActive = *pt.IsActive
	}
}
