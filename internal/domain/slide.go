package domain

// Slide is a promotional carousel banner. Nothing references slides, so
// deletion is unconditional.
type Slide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// SlideDraft carries the caller-supplied fields for a new slide.
type SlideDraft struct {
	Title       string
	Description string
	Image       string
}
