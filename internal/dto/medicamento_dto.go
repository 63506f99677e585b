package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type MedicamentoRequest struct {
	Name        *string `form:"name"        json:"name"`
	Descripcion *string `form:"descripcion" json:"descripcion"`
	Dosis       *string `form:"dosis"       json:"dosis"`
}

type MedicamentoDatos struct {
	Name        string
	Descripcion string
	Dosis       string
}

func (r MedicamentoRequest) Datos() MedicamentoDatos {
	return MedicamentoDatos{
		Name:        valor(r.Name),
		Descripcion: valor(r.Descripcion),
		Dosis:       valor(r.Dosis),
	}
}

func (r MedicamentoRequest) Sobre(actual MedicamentoDatos) MedicamentoDatos {
	return MedicamentoDatos{
		Name:        sobre(r.Name, actual.Name),
		Descripcion: sobre(r.Descripcion, actual.Descripcion),
		Dosis:       sobre(r.Dosis, actual.Dosis),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MedicamentoResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Descripcion string `json:"descripcion"`
	Dosis       int    `json:"dosis"`
}
