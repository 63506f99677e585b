package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProveedorRequest struct {
	Name    *string `form:"name"    json:"name"`
	Email   *string `form:"email"   json:"email"`
	Address *string `form:"address" json:"address"`
}

type ProveedorDatos struct {
	Name    string
	Email   string
	Address string
}

func (r ProveedorRequest) Datos() ProveedorDatos {
	return ProveedorDatos{
		Name:    valor(r.Name),
		Email:   valor(r.Email),
		Address: valor(r.Address),
	}
}

func (r ProveedorRequest) Sobre(actual ProveedorDatos) ProveedorDatos {
	return ProveedorDatos{
		Name:    sobre(r.Name, actual.Name),
		Email:   sobre(r.Email, actual.Email),
		Address: sobre(r.Address, actual.Address),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
