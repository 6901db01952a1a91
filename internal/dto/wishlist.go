package dto

// AddToWishlistRequest represents the payload to save an item.
// item_image and description are optional.
type AddToWishlistRequest struct {
	ItemID      string `json:"item_id" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
	ItemImage   string `json:"item_image,omitempty"`
	Description string `json:"description,omitempty"`
}

// RemoveFromWishlistRequest represents the payload to delete an item
type RemoveFromWishlistRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// WishlistItem represents a saved item in API responses
type WishlistItem struct {
	ItemID      string `json:"item_id"`
	ItemName    string `json:"item_name"`
	ItemImage   string `json:"item_image,omitempty"`
	Description string `json:"description,omitempty"`
	AddedDate   string `json:"added_date"`
}

// WishlistResponse envelope
type WishlistResponse struct {
	Wishlist []WishlistItem `json:"wishlist"`
}

// WishlistAckResponse acknowledges a JSON-submitted mutation
type WishlistAckResponse struct {
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
}
