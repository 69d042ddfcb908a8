package models

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is the UI shape of a catalogue item. Price is in VND.
type Product struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Price     float64       `json:"price"`
	Stock     int           `json:"stock"`
	Status    ProductStatus `json:"status"`
	ImageURL  string        `json:"imageUrl,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
}
