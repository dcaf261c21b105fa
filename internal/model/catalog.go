package model

import "gorm.io/datatypes"

const (
	TableItems          = "items"
	TableSpecifications = "specifications"
)

// Item is a good or service offered by a supplying organization.
type Item struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(50);not null" json:"name" validate:"required,max=50"`
	Description *string `gorm:"type:varchar(255)" json:"description" validate:"omitempty,max=255"`
	Category    string  `gorm:"type:varchar(5);not null" json:"category" validate:"required,max=5"`
	SupplierID  uint    `gorm:"not null;index" json:"supplier_id" validate:"required"`

	Supplier *Organization `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty" validate:"-"`
}

func (Item) TableName() string { return TableItems }

// Specification describes how an item is applied. Document is stored as is.
type Specification struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ItemID      uint           `gorm:"not null;index" json:"item_id" validate:"required"`
	Application string         `gorm:"type:varchar(25);not null" json:"application" validate:"required,max=25"`
	Document    datatypes.JSON `gorm:"column:specification" json:"specification,omitempty"`

	Item *Item `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty" validate:"-"`
}

func (Specification) TableName() string { return TableSpecifications }
