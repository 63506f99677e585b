package repository

import (
	"vetsoft/internal/model"

	"gorm.io/gorm"
)

type (
	ClienteRepository     = Repository[model.Cliente]
	MascotaRepository     = Repository[model.Mascota]
	MedicamentoRepository = Repository[model.Medicamento]
	ProveedorRepository   = Repository[model.Proveedor]
	ProductoRepository    = Repository[model.Producto]
	VeterinarioRepository = Repository[model.Veterinario]
)

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return newGormRepo[model.Cliente](db, "clientes")
}

func NewMascotaRepository(db *gorm.DB) MascotaRepository {
	return newGormRepo[model.Mascota](db, "mascotas")
}

func NewMedicamentoRepository(db *gorm.DB) MedicamentoRepository {
	return newGormRepo[model.Medicamento](db, "medicamentos")
}

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return newGormRepo[model.Proveedor](db, "proveedores")
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return newGormRepo[model.Producto](db, "productos")
}

func NewVeterinarioRepository(db *gorm.DB) VeterinarioRepository {
	return newGormRepo[model.Veterinario](db, "veterinarios")
}

// Set groups one repository per record type.
type Set struct {
	Clientes     ClienteRepository
	Mascotas     MascotaRepository
	Medicamentos MedicamentoRepository
	Proveedores  ProveedorRepository
	Productos    ProductoRepository
	Veterinarios VeterinarioRepository
}

// NewSet builds the GORM-backed repositories.
func NewSet(db *gorm.DB) Set {
	return Set{
		Clientes:     NewClienteRepository(db),
		Mascotas:     NewMascotaRepository(db),
		Medicamentos: NewMedicamentoRepository(db),
		Proveedores:  NewProveedorRepository(db),
		Productos:    NewProductoRepository(db),
		Veterinarios: NewVeterinarioRepository(db),
	}
}
