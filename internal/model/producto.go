package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is an item sold at the clinic counter.
type Producto struct {
	ID        uint            `gorm:"primaryKey"`
	Nombre    string          `gorm:"size:100;not null"`
	Tipo      string          `gorm:"size:100;not null"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Producto) TableName() string { return "productos" }
