package models

// Order links a client, a seller and a product. Status is free text
// (e.g. "pending", "shipped"); referential integrity of the three IDs is
// the database's concern, not enforced here.
type Order struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ClientID  uint   `json:"clientId"`
	SellerID  uint   `json:"sellerId"`
	ProductID uint   `json:"productId"`
	Status    string `json:"status" gorm:"type:varchar(100)"`
}

// GetID returns the store-assigned primary key.
func (o Order) GetID() uint { return o.ID }
