package model

import "time"

// Cliente is a pet owner registered at the clinic.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"size:100;not null"`
	Telefono  string `gorm:"size:15;not null"`
	Email     string `gorm:"size:254;not null"`
	Ciudad    Ciudad `gorm:"size:20;not null"`
	Direccion string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Cliente) TableName() string { return "clientes" }
