package models

// Client is a buyer account. The ID is assigned by the database on insert.
// It is omitted from JSON when zero so projected listings (name+email only)
// do not show a meaningless id.
type Client struct {
	ID    uint   `json:"id,omitempty" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(50)"`
	Email string `json:"email" gorm:"type:varchar(255)"`
}

// GetID returns the store-assigned primary key.
func (c Client) GetID() uint { return c.ID }
