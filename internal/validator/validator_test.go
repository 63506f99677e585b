package validator

import (
	"strings"
	"testing"
	"time"

	"vetsoft/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clienteValido() dto.ClienteDatos {
	return dto.ClienteDatos{
		Name:    "Juan Sebastian Veron",
		Phone:   "54221555232",
		Email:   "brujita75@vetsoft.com",
		City:    "La Plata",
		Address: "13 y 44",
	}
}

// ── Empty input ───────────────────────────────────────────────────────────────

func TestValidators_EmptyInputReportsEveryRequiredField(t *testing.T) {
	assert.Equal(t, Errors{
		"name":  MsgNombre,
		"phone": MsgTelefono,
		"email": MsgEmail,
		"city":  MsgCiudad,
	}, Cliente(dto.ClienteDatos{}))

	assert.Equal(t, Errors{
		"name":     MsgNombre,
		"birthday": MsgFecha,
		"weight":   MsgPeso,
	}, Mascota(dto.MascotaDatos{}))

	assert.Equal(t, Errors{
		"name":        MsgNombreMedicamento,
		"descripcion": MsgDescripcion,
		"dosis":       MsgDosis,
	}, Medicamento(dto.MedicamentoDatos{}))

	assert.Equal(t, Errors{
		"name":    MsgNombre,
		"email":   MsgEmail,
		"address": MsgDireccion,
	}, Proveedor(dto.ProveedorDatos{}))

	assert.Equal(t, Errors{
		"name":  MsgNombreProducto,
		"type":  MsgTipoProducto,
		"price": MsgPrecio,
	}, Producto(dto.ProductoDatos{}))

	assert.Equal(t, Errors{
		"name":       MsgNombre,
		"email":      MsgEmail,
		"phone":      MsgTelefono,
		"speciality": MsgEspecialidad,
	}, Veterinario(dto.VeterinarioDatos{}))
}

func TestValidators_AreIdempotent(t *testing.T) {
	in := dto.ClienteDatos{Name: "Ju4n", Phone: "221", Email: "x@gmail.com", City: "Tandil"}
	assert.Equal(t, Cliente(in), Cliente(in))

	m := dto.MedicamentoDatos{Name: "Ibuprofeno", Dosis: "11"}
	assert.Equal(t, Medicamento(m), Medicamento(m))
}

// ── Cliente ───────────────────────────────────────────────────────────────────

func TestCliente_Valid(t *testing.T) {
	assert.True(t, Cliente(clienteValido()).Valid())
}

func TestCliente_Phone(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"54221555232", ""},
		{"542213190689", ""},
		{"221555232", MsgTelefonoPrefijo},
		{"letras", MsgTelefonoInvalido},
		{"letrasenvezdenumero", MsgTelefonoInvalido},
		{"54-221-555", MsgTelefonoInvalido},
		{"+54221555232", MsgTelefonoInvalido},
	}
	for _, tc := range cases {
		in := clienteValido()
		in.Phone = tc.phone
		errs := Cliente(in)
		assert.Equal(t, tc.want, errs["phone"], tc.phone)
	}
}

func TestCliente_Email(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"x@vetsoft.com", ""},
		{"x@gmail.com", MsgEmailDominio},
		{"@vetsoft.com", MsgEmailSinUsuario},
		{"brujita75", MsgEmailInvalido},
	}
	for _, tc := range cases {
		in := clienteValido()
		in.Email = tc.email
		assert.Equal(t, tc.want, Cliente(in)["email"], tc.email)
	}
}

func TestCliente_Name(t *testing.T) {
	in := clienteValido()
	in.Name = "Ju4n Sebastian Veron"
	assert.Equal(t, Errors{"name": MsgNombreSoloLetras}, Cliente(in))

	in.Name = "Juan Sebastián Verón"
	assert.True(t, Cliente(in).Valid())

	in.Name = "Juan-Pablo"
	assert.Equal(t, MsgNombreSoloLetras, Cliente(in)["name"])
}

func TestCliente_City(t *testing.T) {
	in := clienteValido()
	in.City = "Ciudad inexistente"
	assert.Equal(t, Errors{"city": MsgCiudadInvalida}, Cliente(in))

	for _, c := range []string{"Ensenada", "La Plata", "Berisso"} {
		in.City = c
		assert.True(t, Cliente(in).Valid(), c)
	}
}

func TestCliente_ReportsAllFieldsTogether(t *testing.T) {
	errs := Cliente(dto.ClienteDatos{Name: "R2D2", Phone: "abc", Email: "x@gmail.com", City: "Tandil"})

	assert.Equal(t, Errors{
		"name":  MsgNombreSoloLetras,
		"phone": MsgTelefonoInvalido,
		"email": MsgEmailDominio,
		"city":  MsgCiudadInvalida,
	}, errs)
}

// ── Mascota ───────────────────────────────────────────────────────────────────

func TestMascota_Weight(t *testing.T) {
	cases := []struct {
		weight string
		want   string
	}{
		{"5.0", ""},
		{"0.250", ""},
		{"25.1000", ""},
		{"99999.999", ""},
		{"-5", MsgPesoPositivo},
		{"0", MsgPesoPositivo},
		{"0.0001", MsgPesoDecimales},
		{"25.1234", MsgPesoDecimales},
		{"100000", MsgPesoMaximo},
		{"1e9", MsgPesoMaximo},
		{"pesado", MsgPesoInvalido},
	}
	for _, tc := range cases {
		errs := Mascota(dto.MascotaDatos{Name: "Tito", Birthday: "2024-02-11", Weight: tc.weight})
		assert.Equal(t, tc.want, errs["weight"], tc.weight)
	}
}

func TestMascota_BreedIsOptional(t *testing.T) {
	errs := Mascota(dto.MascotaDatos{Name: "Micho", Birthday: "2024-04-04", Weight: "4"})
	assert.True(t, errs.Valid())
}

func TestMascota_Birthday(t *testing.T) {
	for _, raw := range []string{"2024-02-11", "11-02-2024", "1-2-2024"} {
		errs := Mascota(dto.MascotaDatos{Name: "Tito", Birthday: raw, Weight: "3"})
		assert.True(t, errs.Valid(), raw)
	}
	for _, raw := range []string{"11/02/2024", "2024-13-01", "mañana", "24-02-11"} {
		errs := Mascota(dto.MascotaDatos{Name: "Tito", Birthday: raw, Weight: "3"})
		assert.Equal(t, MsgFechaInvalida, errs["birthday"], raw)
	}
}

func TestParseFecha_BothLayoutsAgree(t *testing.T) {
	iso, err := ParseFecha("2024-02-11")
	require.NoError(t, err)
	dmy, err := ParseFecha("11-02-2024")
	require.NoError(t, err)

	assert.Equal(t, iso, dmy)
	assert.Equal(t, time.February, iso.Month())
	assert.Equal(t, 11, iso.Day())
}

// ── Medicamento ───────────────────────────────────────────────────────────────

func TestMedicamento_Dosis(t *testing.T) {
	cases := []struct {
		dosis string
		want  string
	}{
		{"5", ""},
		{"1", ""},
		{"10", ""},
		{"0", MsgDosisPositiva},
		{"-3", MsgDosisPositiva},
		{"0.5", MsgDosisMinima},
		{"11", MsgDosisMaxima},
		{"2.5", MsgDosisEntera},
		{"mucha", MsgDosisInvalida},
	}
	for _, tc := range cases {
		errs := Medicamento(dto.MedicamentoDatos{Name: "Ibuprofeno", Descripcion: "Dolores de cabeza", Dosis: tc.dosis})
		assert.Equal(t, tc.want, errs["dosis"], tc.dosis)
	}
}

// ── Proveedor ─────────────────────────────────────────────────────────────────

func TestProveedor(t *testing.T) {
	ok := dto.ProveedorDatos{Name: "Luis Fernando Flores", Email: "Fernanf100@gmail.com", Address: "ElSalvador 245"}
	assert.True(t, Proveedor(ok).Valid())

	sinArroba := ok
	sinArroba.Email = "fernanf100"
	assert.Equal(t, Errors{"email": MsgEmailInvalido}, Proveedor(sinArroba))

	sinDireccion := ok
	sinDireccion.Address = ""
	assert.Equal(t, Errors{"address": MsgDireccion}, Proveedor(sinDireccion))
}

// ── Producto ──────────────────────────────────────────────────────────────────

func TestProducto_Price(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"100.0", ""},
		{"0.01", ""},
		{"9999999999.99", ""},
		{"-10", MsgPrecioPositivo},
		{"0", MsgPrecioPositivo},
		{"0.001", MsgPrecioDecimales},
		{"10.005", MsgPrecioDecimales},
		{"10000000000", MsgPrecioMaximo},
		{"1e12", MsgPrecioMaximo},
		{"abc", MsgPrecioInvalido},
	}
	for _, tc := range cases {
		errs := Producto(dto.ProductoDatos{Name: "Hueso", Type: "Juguete", Price: tc.price})
		assert.Equal(t, tc.want, errs["price"], tc.price)
	}
}

// ── Veterinario ───────────────────────────────────────────────────────────────

func TestVeterinario_Speciality(t *testing.T) {
	base := dto.VeterinarioDatos{Name: "Juan Perez", Email: "juan@example.com", Phone: "123456789"}

	cases := []struct {
		speciality string
		want       string
	}{
		{"Cardiologia", ""},
		{"Clinica", ""},
		{"", MsgEspecialidad},
		{"Oftalmologia", MsgEspecialidadNoValida},
		{"oftalmologia", MsgEspecialidadNoValida},
	}
	for _, tc := range cases {
		in := base
		in.Speciality = tc.speciality
		assert.Equal(t, tc.want, Veterinario(in)["speciality"], tc.speciality)
	}
}

// ── Column limits ─────────────────────────────────────────────────────────────

func TestValidators_RejectValuesLongerThanTheirColumn(t *testing.T) {
	largo := strings.Repeat("a", LargoTexto+1)

	c := clienteValido()
	c.Name = largo
	c.Phone = "54" + strings.Repeat("1", 28)
	c.Address = largo
	assert.Equal(t, Errors{
		"name":    MsgLargoMaximo(LargoTexto),
		"phone":   MsgLargoMaximo(LargoTelefono),
		"address": MsgLargoMaximo(LargoTexto),
	}, Cliente(c))

	errs := Mascota(dto.MascotaDatos{Name: "Tito", Breed: strings.Repeat("b", LargoRaza+1), Birthday: "2024-02-11", Weight: "3"})
	assert.Equal(t, Errors{"breed": MsgLargoMaximo(LargoRaza)}, errs)

	errs = Proveedor(dto.ProveedorDatos{Name: largo, Email: strings.Repeat("x", LargoEmail) + "@mail.com", Address: "ElSalvador 245"})
	assert.Equal(t, Errors{"name": MsgLargoMaximo(LargoTexto), "email": MsgLargoMaximo(LargoEmail)}, errs)

	errs = Producto(dto.ProductoDatos{Name: "Hueso", Type: largo, Price: "10"})
	assert.Equal(t, Errors{"type": MsgLargoMaximo(LargoTexto)}, errs)

	errs = Medicamento(dto.MedicamentoDatos{Name: "Ibuprofeno", Descripcion: largo, Dosis: "5"})
	assert.Equal(t, Errors{"descripcion": MsgLargoMaximo(LargoTexto)}, errs)

	errs = Veterinario(dto.VeterinarioDatos{Name: "Juan Perez", Email: "juan@example.com", Phone: strings.Repeat("1", LargoTelefonoVet+1), Speciality: "Cardiologia"})
	assert.Equal(t, Errors{"phone": MsgLargoMaximo(LargoTelefonoVet)}, errs)
}

func TestValidators_AcceptValuesThatFillTheirColumn(t *testing.T) {
	c := clienteValido()
	c.Name = strings.Repeat("a", LargoTexto)
	c.Phone = "54" + strings.Repeat("1", LargoTelefono-2)
	assert.True(t, Cliente(c).Valid())
}

func TestErrors_ErrorIsStable(t *testing.T) {
	errs := Errors{"phone": "b", "name": "a"}
	assert.Equal(t, "validacion: name: a; phone: b", errs.Error())
}
