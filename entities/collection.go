package entities

// Favorite is the per-user singleton favorites collection.
type Favorite struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes []*Recipe `gorm:"many2many:favorite_recipes;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Timestamp
}

// ShoppingCart is the per-user singleton shopping cart.
type ShoppingCart struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex" json:"user_id"`

	User    *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipes []*Recipe `gorm:"many2many:shopping_cart_recipes;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Timestamp
}
