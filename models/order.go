package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	OrderRef   string          `gorm:"uniqueIndex" json:"order_ref"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index"`
	ProductID uint
	Product   Product
	Quantity  uint `gorm:"not null;default:1"`
}
