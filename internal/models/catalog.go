package models

// ExhibitionItem represents one piece in the virtual exhibition catalog
type ExhibitionItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
