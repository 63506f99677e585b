package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ClienteRequest struct {
	Name    *string `form:"name"    json:"name"`
	Phone   *string `form:"phone"   json:"phone"`
	Email   *string `form:"email"   json:"email"`
	City    *string `form:"city"    json:"city"`
	Address *string `form:"address" json:"address"`
}

type ClienteDatos struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
}

// Datos resolves the request for a create: missing fields count as blank.
func (r ClienteRequest) Datos() ClienteDatos {
	return ClienteDatos{
		Name:    valor(r.Name),
		Phone:   valor(r.Phone),
		Email:   valor(r.Email),
		City:    valor(r.City),
		Address: valor(r.Address),
	}
}

// Sobre overlays the submitted fields on the stored values of a record.
func (r ClienteRequest) Sobre(actual ClienteDatos) ClienteDatos {
	return ClienteDatos{
		Name:    sobre(r.Name, actual.Name),
		Phone:   sobre(r.Phone, actual.Phone),
		Email:   sobre(r.Email, actual.Email),
		City:    sobre(r.City, actual.City),
		Address: sobre(r.Address, actual.Address),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
}
