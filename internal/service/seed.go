package service

import (
	"context"
	"fmt"

	"vetsoft/internal/dto"
)

func p(s string) *string { return &s }

// Sembrar inserts a small demo data set through the regular Crear operations,
// so every record satisfies the same rules as user input.
func (s *Services) Sembrar(ctx context.Context) error {
	clientes := []dto.ClienteRequest{
		{Name: p("Juan Sebastian Veron"), Phone: p("54221555232"), Email: p("brujita75@vetsoft.com"), City: p("La Plata"), Address: p("13 y 44")},
		{Name: p("Maria Laura Sosa"), Phone: p("54221444111"), Email: p("mlsosa@vetsoft.com"), City: p("Ensenada")},
	}
	for _, c := range clientes {
		if _, err := s.Clientes.Crear(ctx, c); err != nil {
			return fmt.Errorf("seed cliente %s: %w", *c.Name, err)
		}
	}

	mascotas := []dto.MascotaRequest{
		{Name: p("Roco"), Breed: p("Labrador"), Birthday: p("2021-03-15"), Weight: p("25.4")},
		{Name: p("Mishi"), Birthday: p("02-11-2019"), Weight: p("4.2")},
	}
	for _, m := range mascotas {
		if _, err := s.Mascotas.Crear(ctx, m); err != nil {
			return fmt.Errorf("seed mascota %s: %w", *m.Name, err)
		}
	}

	medicamentos := []dto.MedicamentoRequest{
		{Name: p("Amoxicilina"), Descripcion: p("Antibiótico de amplio espectro"), Dosis: p("2")},
		{Name: p("Meloxicam"), Descripcion: p("Antiinflamatorio"), Dosis: p("1")},
	}
	for _, m := range medicamentos {
		if _, err := s.Medicamentos.Crear(ctx, m); err != nil {
			return fmt.Errorf("seed medicamento %s: %w", *m.Name, err)
		}
	}

	if _, err := s.Proveedores.Crear(ctx, dto.ProveedorRequest{
		Name: p("Distribuidora Sur"), Email: p("ventas@distsur.com"), Address: p("Calle 7 1234, La Plata"),
	}); err != nil {
		return fmt.Errorf("seed proveedor: %w", err)
	}

	productos := []dto.ProductoRequest{
		{Name: p("Alimento balanceado 15kg"), Type: p("Alimento"), Price: p("45999.90")},
		{Name: p("Pipeta antipulgas"), Type: p("Antiparasitario"), Price: p("8500")},
	}
	for _, pr := range productos {
		if _, err := s.Productos.Crear(ctx, pr); err != nil {
			return fmt.Errorf("seed producto %s: %w", *pr.Name, err)
		}
	}

	if _, err := s.Veterinarios.Crear(ctx, dto.VeterinarioRequest{
		Name: p("Ana Gomez"), Email: p("agomez@vetsoft.com"), Phone: p("54221333222"), Speciality: p("Clinica"),
	}); err != nil {
		return fmt.Errorf("seed veterinario: %w", err)
	}
	return nil
}
