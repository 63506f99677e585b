package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mascota is a patient of the clinic. Peso is kept in kilograms.
type Mascota struct {
	ID              uint            `gorm:"primaryKey"`
	Nombre          string          `gorm:"size:100;not null"`
	Raza            string          `gorm:"size:50"`
	FechaNacimiento time.Time       `gorm:"type:date;not null"`
	Peso            decimal.Decimal `gorm:"type:decimal(8,3);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Mascota) TableName() string { return "mascotas" }
