package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	ParentID *uint     `gorm:"index" json:"parent"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"-"`
	Products []Product `gorm:"many2many:product_categories" json:"-"`
}
