// Package service holds the save/update/delete rules of every clinic record.
//
// Creates validate the submitted fields before anything is persisted. Updates
// overlay the submitted fields on the stored record, validate the merged input
// and either persist everything or nothing.
package service

import (
	"vetsoft/internal/repository"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = repository.ErrNotFound

// Services groups one service per record type.
type Services struct {
	Clientes     ClienteService
	Mascotas     MascotaService
	Medicamentos MedicamentoService
	Proveedores  ProveedorService
	Productos    ProductoService
	Veterinarios VeterinarioService
}

func New(repos repository.Set) *Services {
	return &Services{
		Clientes:     NewClienteService(repos.Clientes),
		Mascotas:     NewMascotaService(repos.Mascotas),
		Medicamentos: NewMedicamentoService(repos.Medicamentos),
		Proveedores:  NewProveedorService(repos.Proveedores),
		Productos:    NewProductoService(repos.Productos),
		Veterinarios: NewVeterinarioService(repos.Veterinarios),
	}
}

func logMutacion(entidad, accion string, id uint) {
	log.Info().Str("entidad", entidad).Str("accion", accion).Uint("id", id).Msg("registro modificado")
}
