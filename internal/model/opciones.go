package model

// Ciudad is the closed set of cities a Cliente can live in.
type Ciudad string

const (
	CiudadEnsenada Ciudad = "Ensenada"
	CiudadLaPlata  Ciudad = "La Plata"
	CiudadBerisso  Ciudad = "Berisso"
)

// Ciudades returns the allowed cities in display order.
func Ciudades() []Ciudad {
	return []Ciudad{CiudadEnsenada, CiudadLaPlata, CiudadBerisso}
}

// ParseCiudad maps a raw form value onto a Ciudad. The match is exact.
func ParseCiudad(raw string) (Ciudad, bool) {
	switch c := Ciudad(raw); c {
	case CiudadEnsenada, CiudadLaPlata, CiudadBerisso:
		return c, true
	default:
		return "", false
	}
}

// Especialidad is the closed set of specialities a Veterinario can hold.
type Especialidad string

const (
	EspecialidadCardiologia Especialidad = "Cardiologia"
	EspecialidadNeurologia  Especialidad = "Neurologia"
	EspecialidadOncologia   Especialidad = "Oncologia"
	EspecialidadNutricion   Especialidad = "Nutricion"
	EspecialidadClinica     Especialidad = "Clinica"
)

// Especialidades returns the allowed specialities in display order.
func Especialidades() []Especialidad {
	return []Especialidad{
		EspecialidadCardiologia,
		EspecialidadNeurologia,
		EspecialidadOncologia,
		EspecialidadNutricion,
		EspecialidadClinica,
	}
}

// ParseEspecialidad maps a raw form value onto an Especialidad. The match is exact.
func ParseEspecialidad(raw string) (Especialidad, bool) {
	switch e := Especialidad(raw); e {
	case EspecialidadCardiologia, EspecialidadNeurologia, EspecialidadOncologia,
		EspecialidadNutricion, EspecialidadClinica:
		return e, true
	default:
		return "", false
	}
}
