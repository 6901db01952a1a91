package models

import "time"

// AddedDateLayout is the wall-clock format stored in the wishlist table, UTC
const AddedDateLayout = "2006-01-02 15:04:05"

// WishlistEntry represents one saved item, keyed by (email, item_id)
type WishlistEntry struct {
	Email       string `json:"email" dynamodbav:"email"`         // partition key
	ItemID      string `json:"item_id" dynamodbav:"item_id"`     // sort key
	ItemName    string `json:"item_name" dynamodbav:"item_name"`
	ItemImage   string `json:"item_image,omitempty" dynamodbav:"item_image,omitempty"`
	Description string `json:"description,omitempty" dynamodbav:"description,omitempty"`
	AddedDate   string `json:"added_date" dynamodbav:"added_date"`
}

// FormatAddedDate renders a server-assigned creation timestamp
func FormatAddedDate(t time.Time) string {
	return t.UTC().Format(AddedDateLayout)
}
