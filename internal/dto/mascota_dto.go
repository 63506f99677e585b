package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MascotaRequest struct {
	Name     *string `form:"name"     json:"name"`
	Breed    *string `form:"breed"    json:"breed"`
	Birthday *string `form:"birthday" json:"birthday"` // 2006-01-02 or 02-01-2006
	Weight   *string `form:"weight"   json:"weight"`
}

type MascotaDatos struct {
	Name     string
	Breed    string
	Birthday string
	Weight   string
}

func (r MascotaRequest) Datos() MascotaDatos {
	return MascotaDatos{
		Name:     valor(r.Name),
		Breed:    valor(r.Breed),
		Birthday: valor(r.Birthday),
		Weight:   valor(r.Weight),
	}
}

func (r MascotaRequest) Sobre(actual MascotaDatos) MascotaDatos {
	return MascotaDatos{
		Name:     sobre(r.Name, actual.Name),
		Breed:    sobre(r.Breed, actual.Breed),
		Birthday: sobre(r.Birthday, actual.Birthday),
		Weight:   sobre(r.Weight, actual.Weight),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MascotaResponse struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Breed    string          `json:"breed"`
	Birthday string          `json:"birthday"` // ISO date
	Weight   decimal.Decimal `json:"weight"`
}
