package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type VeterinarioRequest struct {
	Name       *string `form:"name"       json:"name"`
	Email      *string `form:"email"      json:"email"`
	Phone      *string `form:"phone"      json:"phone"`
	Speciality *string `form:"speciality" json:"speciality"`
}

type VeterinarioDatos struct {
	Name       string
	Email      string
	Phone      string
	Speciality string
}

func (r VeterinarioRequest) Datos() VeterinarioDatos {
	return VeterinarioDatos{
		Name:       valor(r.Name),
		Email:      valor(r.Email),
		Phone:      valor(r.Phone),
		Speciality: valor(r.Speciality),
	}
}

func (r VeterinarioRequest) Sobre(actual VeterinarioDatos) VeterinarioDatos {
	return VeterinarioDatos{
		Name:       sobre(r.Name, actual.Name),
		Email:      sobre(r.Email, actual.Email),
		Phone:      sobre(r.Phone, actual.Phone),
		Speciality: sobre(r.Speciality, actual.Speciality),
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VeterinarioResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Speciality string `json:"speciality"`
}

// OpcionesResponse lists the closed choice sets used by the forms.
type OpcionesResponse struct {
	Ciudades       []string `json:"ciudades"`
	Especialidades []string `json:"especialidades"`
}
