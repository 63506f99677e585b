package service_test

import (
	"context"
	"errors"
	"testing"

	"vetsoft/internal/dto"
	"vetsoft/internal/repository/memory"
	"vetsoft/internal/service"
	"vetsoft/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func s(v string) *string { return &v }

func newServices() *service.Services {
	return service.New(memory.NewSet())
}

func fieldErrors(t *testing.T, err error) validator.Errors {
	t.Helper()
	var errs validator.Errors
	require.True(t, errors.As(err, &errs), "expected validator.Errors, got %v", err)
	return errs
}

func clienteValido() dto.ClienteRequest {
	return dto.ClienteRequest{
		Name:    s("Juan Sebastian Veron"),
		Phone:   s("54221555232"),
		Email:   s("brujita75@vetsoft.com"),
		City:    s("La Plata"),
		Address: s("13 y 44"),
	}
}

func mascotaValida() dto.MascotaRequest {
	return dto.MascotaRequest{
		Name:     s("Roco"),
		Breed:    s("Labrador"),
		Birthday: s("2021-03-15"),
		Weight:   s("25"),
	}
}

// ── Tests: Clientes ──────────────────────────────────────────────────────────

func TestCliente_CrearValido(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	resp, err := svc.Clientes.Crear(ctx, clienteValido())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Juan Sebastian Veron", resp.Name)
	assert.Equal(t, "54221555232", resp.Phone)
	assert.Equal(t, "brujita75@vetsoft.com", resp.Email)
	assert.Equal(t, "La Plata", resp.City)
	assert.Equal(t, "13 y 44", resp.Address)

	list, err := svc.Clientes.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *resp, list[0])
}

func TestCliente_CrearVacio_NoPersiste(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	_, err := svc.Clientes.Crear(ctx, dto.ClienteRequest{})
	errs := fieldErrors(t, err)
	assert.Equal(t, validator.MsgNombre, errs["name"])
	assert.Equal(t, validator.MsgTelefono, errs["phone"])
	assert.Equal(t, validator.MsgEmail, errs["email"])
	assert.Equal(t, validator.MsgCiudad, errs["city"])
	assert.NotContains(t, errs, "address")

	list, err := svc.Clientes.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCliente_ActualizarSoloTelefono(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creado, err := svc.Clientes.Crear(ctx, clienteValido())
	require.NoError(t, err)

	upd, err := svc.Clientes.Actualizar(ctx, creado.ID, dto.ClienteRequest{Phone: s("54221555233")})
	require.NoError(t, err)
	assert.Equal(t, "54221555233", upd.Phone)
	assert.Equal(t, creado.Name, upd.Name)
	assert.Equal(t, creado.Email, upd.Email)
	assert.Equal(t, creado.City, upd.City)
	assert.Equal(t, creado.Address, upd.Address)
}

func TestCliente_ActualizarTelefonoVacio_Rechazado(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creado, err := svc.Clientes.Crear(ctx, clienteValido())
	require.NoError(t, err)

	_, err = svc.Clientes.Actualizar(ctx, creado.ID, dto.ClienteRequest{
		Name:  s("Otro Nombre"),
		Phone: s(""),
	})
	errs := fieldErrors(t, err)
	assert.Equal(t, validator.MsgTelefono, errs["phone"])

	actual, err := svc.Clientes.ObtenerPorID(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, *creado, *actual, "a rejected update must not change any field")
}

func TestCliente_ActualizarDireccionVacia_Permitido(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creado, err := svc.Clientes.Crear(ctx, clienteValido())
	require.NoError(t, err)

	upd, err := svc.Clientes.Actualizar(ctx, creado.ID, dto.ClienteRequest{Address: s("")})
	require.NoError(t, err)
	assert.Empty(t, upd.Address)
}

func TestCliente_Inexistente(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	_, err := svc.Clientes.ObtenerPorID(ctx, 99)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Clientes.Actualizar(ctx, 99, clienteValido())
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, svc.Clientes.Eliminar(ctx, 99), service.ErrNotFound)
}

func TestCliente_Eliminar(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creado, err := svc.Clientes.Crear(ctx, clienteValido())
	require.NoError(t, err)

	require.NoError(t, svc.Clientes.Eliminar(ctx, creado.ID))

	_, err = svc.Clientes.ObtenerPorID(ctx, creado.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorIs(t, svc.Clientes.Eliminar(ctx, creado.ID), service.ErrNotFound)
}

// ── Tests: Mascotas ──────────────────────────────────────────────────────────

func TestMascota_CrearValida(t *testing.T) {
	svc := newServices()

	resp, err := svc.Mascotas.Crear(context.Background(), mascotaValida())
	require.NoError(t, err)
	assert.Equal(t, "Roco", resp.Name)
	assert.Equal(t, "2021-03-15", resp.Birthday)
	assert.True(t, resp.Weight.Equal(decimal.NewFromInt(25)))
}

func TestMascota_FechaDiaMesAnio(t *testing.T) {
	svc := newServices()
	req := mascotaValida()
	req.Birthday = s("15-03-2021")

	resp, err := svc.Mascotas.Crear(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2021-03-15", resp.Birthday)
}

func TestMascota_PesoNegativo_NoModifica(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creada, err := svc.Mascotas.Crear(ctx, mascotaValida())
	require.NoError(t, err)

	_, err = svc.Mascotas.Actualizar(ctx, creada.ID, dto.MascotaRequest{
		Name:   s("Otro"),
		Weight: s("-30"),
	})
	errs := fieldErrors(t, err)
	assert.Equal(t, validator.MsgPesoPositivo, errs["weight"])

	actual, err := svc.Mascotas.ObtenerPorID(ctx, creada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roco", actual.Name)
	assert.True(t, actual.Weight.Equal(decimal.NewFromInt(25)))
}

func TestMascota_RazaVacia_Limpia(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creada, err := svc.Mascotas.Crear(ctx, mascotaValida())
	require.NoError(t, err)

	upd, err := svc.Mascotas.Actualizar(ctx, creada.ID, dto.MascotaRequest{Breed: s("")})
	require.NoError(t, err)
	assert.Empty(t, upd.Breed)
	assert.Equal(t, "Roco", upd.Name)
	assert.Equal(t, "2021-03-15", upd.Birthday)
}

func TestMascota_CrearVacia(t *testing.T) {
	svc := newServices()

	_, err := svc.Mascotas.Crear(context.Background(), dto.MascotaRequest{})
	errs := fieldErrors(t, err)
	assert.Len(t, errs, 3)
	assert.NotContains(t, errs, "breed")
}

// ── Tests: Medicamentos ──────────────────────────────────────────────────────

func TestMedicamento_Dosis(t *testing.T) {
	cases := []struct {
		dosis string
		msg   string
	}{
		{"5", ""},
		{"10", ""},
		{"1", ""},
		{"0", validator.MsgDosisPositiva},
		{"-3", validator.MsgDosisPositiva},
		{"0.5", validator.MsgDosisMinima},
		{"11", validator.MsgDosisMaxima},
		{"2.5", validator.MsgDosisEntera},
		{"abc", validator.MsgDosisInvalida},
	}
	for _, tc := range cases {
		t.Run(tc.dosis, func(t *testing.T) {
			svc := newServices()
			resp, err := svc.Medicamentos.Crear(context.Background(), dto.MedicamentoRequest{
				Name:        s("Amoxicilina"),
				Descripcion: s("Antibiótico"),
				Dosis:       s(tc.dosis),
			})
			if tc.msg == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.dosis, decimal.NewFromInt(int64(resp.Dosis)).String())
				return
			}
			assert.Equal(t, tc.msg, fieldErrors(t, err)["dosis"])
		})
	}
}

func TestMedicamento_ActualizarDescripcion(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	creado, err := svc.Medicamentos.Crear(ctx, dto.MedicamentoRequest{
		Name: s("Amoxicilina"), Descripcion: s("Antibiótico"), Dosis: s("3"),
	})
	require.NoError(t, err)

	upd, err := svc.Medicamentos.Actualizar(ctx, creado.ID, dto.MedicamentoRequest{Descripcion: s("Amplio espectro")})
	require.NoError(t, err)
	assert.Equal(t, "Amplio espectro", upd.Descripcion)
	assert.Equal(t, 3, upd.Dosis)
}

// ── Tests: Proveedores ───────────────────────────────────────────────────────

func TestProveedor_CrearYEliminar(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	p, err := svc.Proveedores.Crear(ctx, dto.ProveedorRequest{
		Name: s("Distribuidora Sur"), Email: s("ventas@sur.com"), Address: s("Calle 7 1234"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Proveedores.Eliminar(ctx, p.ID))

	list, err := svc.Proveedores.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProveedor_EmailSinArroba(t *testing.T) {
	svc := newServices()

	_, err := svc.Proveedores.Crear(context.Background(), dto.ProveedorRequest{
		Name: s("Distribuidora Sur"), Email: s("ventas.sur.com"), Address: s("Calle 7 1234"),
	})
	assert.Equal(t, validator.MsgEmailInvalido, fieldErrors(t, err)["email"])
}

// ── Tests: Productos ─────────────────────────────────────────────────────────

func TestProducto_PrecioNoPositivo_NoModifica(t *testing.T) {
	svc := newServices()
	ctx := context.Background()
	p, err := svc.Productos.Crear(ctx, dto.ProductoRequest{
		Name: s("Alimento"), Type: s("Comida"), Price: s("1500.50"),
	})
	require.NoError(t, err)

	_, err = svc.Productos.Actualizar(ctx, p.ID, dto.ProductoRequest{Price: s("0")})
	assert.Equal(t, validator.MsgPrecioPositivo, fieldErrors(t, err)["price"])

	actual, err := svc.Productos.ObtenerPorID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, actual.Price.Equal(decimal.RequireFromString("1500.50")))
}

// ── Tests: Veterinarios ──────────────────────────────────────────────────────

func TestVeterinario_Especialidad(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	v, err := svc.Veterinarios.Crear(ctx, dto.VeterinarioRequest{
		Name: s("Ana Gomez"), Email: s("ana@mail.com"), Phone: s("2214556677"), Speciality: s("Cardiologia"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cardiologia", v.Speciality)

	_, err = svc.Veterinarios.Actualizar(ctx, v.ID, dto.VeterinarioRequest{Speciality: s("Dermatologia")})
	assert.Equal(t, validator.MsgEspecialidadNoValida, fieldErrors(t, err)["speciality"])

	actual, err := svc.Veterinarios.ObtenerPorID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiologia", actual.Speciality)
}

// ── Tests: Seed ──────────────────────────────────────────────────────────────

func TestSembrar(t *testing.T) {
	svc := newServices()
	ctx := context.Background()

	require.NoError(t, svc.Sembrar(ctx))

	clientes, err := svc.Clientes.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, clientes, 2)

	mascotas, err := svc.Mascotas.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, mascotas, 2)
	assert.Equal(t, "2019-11-02", mascotas[1].Birthday)

	vets, err := svc.Veterinarios.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, vets, 1)
}

// ── Tests: every entity ──────────────────────────────────────────────────────

type operaciones struct {
	crearVacio func(context.Context) error
	contar     func(context.Context) (int, error)
	eliminar   func(context.Context, uint) error
}

func contar[T any](listar func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		list, err := listar(ctx)
		return len(list), err
	}
}

func operacionesPorEntidad(svc *service.Services) map[string]operaciones {
	return map[string]operaciones{
		"clientes": {
			crearVacio: func(ctx context.Context) error { _, err := svc.Clientes.Crear(ctx, dto.ClienteRequest{}); return err },
			contar:     contar(svc.Clientes.Listar),
			eliminar:   svc.Clientes.Eliminar,
		},
		"mascotas": {
			crearVacio: func(ctx context.Context) error { _, err := svc.Mascotas.Crear(ctx, dto.MascotaRequest{}); return err },
			contar:     contar(svc.Mascotas.Listar),
			eliminar:   svc.Mascotas.Eliminar,
		},
		"medicamentos": {
			crearVacio: func(ctx context.Context) error {
				_, err := svc.Medicamentos.Crear(ctx, dto.MedicamentoRequest{})
				return err
			},
			contar:   contar(svc.Medicamentos.Listar),
			eliminar: svc.Medicamentos.Eliminar,
		},
		"proveedores": {
			crearVacio: func(ctx context.Context) error {
				_, err := svc.Proveedores.Crear(ctx, dto.ProveedorRequest{})
				return err
			},
			contar:   contar(svc.Proveedores.Listar),
			eliminar: svc.Proveedores.Eliminar,
		},
		"productos": {
			crearVacio: func(ctx context.Context) error { _, err := svc.Productos.Crear(ctx, dto.ProductoRequest{}); return err },
			contar:     contar(svc.Productos.Listar),
			eliminar:   svc.Productos.Eliminar,
		},
		"veterinarios": {
			crearVacio: func(ctx context.Context) error {
				_, err := svc.Veterinarios.Crear(ctx, dto.VeterinarioRequest{})
				return err
			},
			contar:   contar(svc.Veterinarios.Listar),
			eliminar: svc.Veterinarios.Eliminar,
		},
	}
}

func TestTodas_CrearVacio_NoPersiste(t *testing.T) {
	for nombre, op := range operacionesPorEntidad(newServices()) {
		t.Run(nombre, func(t *testing.T) {
			ctx := context.Background()

			errs := fieldErrors(t, op.crearVacio(ctx))
			assert.NotEmpty(t, errs)

			n, err := op.contar(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestTodas_EliminarInexistente(t *testing.T) {
	for nombre, op := range operacionesPorEntidad(newServices()) {
		t.Run(nombre, func(t *testing.T) {
			assert.ErrorIs(t, op.eliminar(context.Background(), 99), service.ErrNotFound)
		})
	}
}
