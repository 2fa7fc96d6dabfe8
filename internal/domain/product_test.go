package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 25000, SeasonalPrice: 22000, UseSeasonalPrice: false}
	assert.Equal(t, 25000, p.EffectivePrice())

	p.UseSeasonalPrice = true
	assert.Equal(t, 22000, p.EffectivePrice())

	// 0 means unset: the toggle alone is not enough
	p.SeasonalPrice = 0
	assert.Equal(t, 25000, p.EffectivePrice())
}

func TestProductPatch_Apply(t *testing.T) {
	p := Product{Name: "Ramo", Price: 15000, Image: "data:image/jpeg;base64,x", IsActive: true}

	newPrice := 18000
	ProductPatch{Price: &newPrice}.Apply(&p)
	assert.Equal(t, 18000, p.Price)
	assert.Equal(t, "Ramo", p.Name, "unpatched fields stay put")
	assert.True(t, p.IsActive)

	empty := ""
	ProductPatch{Image: &empty}.Apply(&p)
	assert.Empty(t, p.Image, "non-nil empty image clears the photo")
}
