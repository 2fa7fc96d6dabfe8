package domain

// Settings is the singleton shop configuration.
type Settings struct {
	ShopLat     float64 `json:"shopLat"`
	ShopLng     float64 `json:"shopLng"`
	CostPerKm   float64 `json:"costPerKm"`
	PhoneNumber string  `json:"phoneNumber"`
}

// DefaultSettings returns the shop defaults: Santa Bárbara de Heredia,
// ₡650 per km, the shop's WhatsApp number.
func DefaultSettings() Settings {
	return Settings{
		ShopLat:     9.86,
		ShopLng:     -83.92,
		CostPerKm:   650,
		PhoneNumber: "50686053613",
	}
}
