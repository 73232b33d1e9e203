package models

// Product is an item offered for sale. SellerID is optional; not every
// product is attached to a seller.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"type:varchar(50)"`
	Price       float64 `json:"price"`
	Description string  `json:"description" gorm:"type:varchar(255)"`
	Color       string  `json:"color" gorm:"type:varchar(25)"`
	SellerID    *uint   `json:"sellerId,omitempty"`
}

// GetID returns the store-assigned primary key.
func (p Product) GetID() uint { return p.ID }
