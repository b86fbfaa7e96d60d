package entity

import "time"

// Product is a listing created by a verified seller. It is immutable once created.
type Product struct {
	ID          string    // Store-assigned document id.
	SellerID    string    // Principal.ID of the seller.
	SellerEmail string    // Principal.Email of the seller.
	Name        string    // Listing title.
	Description string    // Listing body.
	Price       float64   // Non-negative price.
	ImageURL    string    // Retrievable URL of the uploaded image.
	CreatedAt   time.Time // Server-assigned creation time.
}
