package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProductoRequest struct {
	Name  *string `form:"name"  json:"name"`
	Type  *string `form:"type"  json:"type"`
	Price *string `form:"price" json:"price"`
}

type ProductoDatos struct {
	Name  string
	Type  string
	Price string
}

func (r ProductoRequest) Datos() ProductoDatos {
	return ProductoDatos{
		Name:  valor(r.Name),
		Type:  valor(r.Type),
		Price: valor(r.Price),
	}
}

func (r ProductoRequest) Sobre(actual ProductoDatos) ProductoDatos {
	return ProductoDatos{
		Name:  sobre(r.Name, actual.Name),
		Type:  sobre(r.Type, actual.Type),
		Price: sobre(r.Price, actual.Price),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}
