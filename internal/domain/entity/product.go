package entity

import "time"

// ExpiryDateLayout is the wire format for product expiry dates (DD-MM-YYYY),
// matching what the mobile forms submit.
const ExpiryDateLayout = "02-01-2006"

// Product is a single inventory record. The collection keeps insertion
// order; ID is unique and assigned at creation.
type Product struct {
	ID         string  `json:"id"`          // Unique identifier, generated when the product is created.
	Name       string  `json:"name"`        // Display name; required, never empty once stored.
	Quantity   int     `json:"quantity"`    // Units currently in stock.
	ExpiryDate string  `json:"expiry_date"` // Expiry date in DD-MM-YYYY form.
	Exits      int     `json:"exits"`       // Units that have left stock.
	Price      float64 `json:"price"`       // Unit price; strictly positive once stored.
}

// ExpiresAt parses the expiry date. Records with a malformed date report
// the zero time, which orders them first in the expiry projection.
func (p Product) ExpiresAt() time.Time {
	t, err := time.Parse(ExpiryDateLayout, p.ExpiryDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortKey selects one of the read-only projections of the product list.
type SortKey string

const (
	// SortByQuantity orders by quantity, ascending.
	SortByQuantity SortKey = "quantity"
	// SortByExpiry orders by parsed expiry date, ascending.
	SortByExpiry SortKey = "expiry"
	// SortByExits orders by exits, descending.
	SortByExits SortKey = "exits"
)
