package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"uniqueIndex:idx_cart_product"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_product"`
	Product   Product
	Quantity  uint `gorm:"not null;default:1"`
	AddedAt   time.Time
}
