package model

import "time"

// Medicamento is a drug kept in stock. Dosis is always within 1..10.
type Medicamento struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion string `gorm:"size:100;not null"`
	Dosis       int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Medicamento) TableName() string { return "medicamentos" }
