package models

// Seller is a merchant account. Same shape as Client, kept separate because
// the store tables and the HTTP surface are separate.
type Seller struct {
	ID    uint   `json:"id,omitempty" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(50)"`
	Email string `json:"email" gorm:"type:varchar(255)"`
}

// GetID returns the store-assigned primary key.
func (s Seller) GetID() uint { return s.ID }
