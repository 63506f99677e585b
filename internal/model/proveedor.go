package model

import "time"

// Proveedor represents a supplier of the clinic.
type Proveedor struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null"`
	Direccion string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
