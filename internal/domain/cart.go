package domain

// CartLine is one cart entry. Name, Price and Image are snapshots taken when
// the product was first added; editing the product later does not rewrite
// lines already in the cart. The JSON keys match the stored v2 cart format.
type CartLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}
