package model

import "time"

// Veterinario is a member of the clinical staff.
type Veterinario struct {
	ID           uint         `gorm:"primaryKey"`
	Nombre       string       `gorm:"size:100;not null"`
	Email        string       `gorm:"size:254;not null"`
	Telefono     string       `gorm:"size:20;not null"`
	Especialidad Especialidad `gorm:"size:30;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Veterinario) TableName() string { return "veterinarios" }
