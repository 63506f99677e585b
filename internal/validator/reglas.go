package validator

import (
	"errors"
	"strings"
	"time"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"

	"github.com/shopspring/decimal"
)

// FechaISO is the layout used to store and render dates.
const FechaISO = "2006-01-02"

var errFecha = errors.New("formato de fecha inválido")

// Column limits of the stored records; see the gorm tags in internal/model.
const (
	LargoTexto       = 100
	LargoRaza        = 50
	LargoEmail       = 254
	LargoTelefono    = 15
	LargoTelefonoVet = 20

	DecimalesPeso   = 3
	DecimalesPrecio = 2
)

var (
	pesoMaximo   = decimal.New(1, 5)
	precioMaximo = decimal.New(1, 10)
)

// ParseFecha accepts year-month-day and day-month-year, both hyphenated.
// A four-digit first segment selects the ISO reading.
func ParseFecha(raw string) (time.Time, error) {
	layout := "2-1-2006"
	if strings.IndexByte(raw, '-') == 4 {
		layout = "2006-1-2"
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return time.Time{}, errFecha
	}
	return t, nil
}

// email checks presence and the "@" rule shared by clients, providers and vets.
func (v *Validator) email(key, value string) bool {
	if !v.Required(key, value, MsgEmail) {
		return false
	}
	if !Is(value, "contains=@") {
		v.AddError(key, MsgEmailInvalido)
		return false
	}
	return v.Max(key, value, LargoEmail)
}

// decimales reports whether d has at most places fractional digits once
// trailing zeros are ignored.
func decimales(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

func Cliente(d dto.ClienteDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombre) {
		v.Check(Is(d.Name, "alphaspace"), "name", MsgNombreSoloLetras)
		v.Max("name", d.Name, LargoTexto)
	}

	if v.Required("phone", d.Phone, MsgTelefono) {
		switch {
		case !Is(d.Phone, "number"):
			v.AddError("phone", MsgTelefonoInvalido)
		case !Is(d.Phone, "startswith=54"):
			v.AddError("phone", MsgTelefonoPrefijo)
		default:
			v.Max("phone", d.Phone, LargoTelefono)
		}
	}

	if v.email("email", d.Email) {
		switch {
		case d.Email == DominioClientes:
			v.AddError("email", MsgEmailSinUsuario)
		case !Is(d.Email, "endswith="+DominioClientes):
			v.AddError("email", MsgEmailDominio)
		}
	}

	if v.Required("city", d.City, MsgCiudad) {
		_, ok := model.ParseCiudad(d.City)
		v.Check(ok, "city", MsgCiudadInvalida)
	}

	v.Max("address", d.Address, LargoTexto)

	return v.Errors
}

func Mascota(d dto.MascotaDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombre) {
		v.Max("name", d.Name, LargoTexto)
	}
	v.Max("breed", d.Breed, LargoRaza)

	if v.Required("birthday", d.Birthday, MsgFecha) {
		_, err := ParseFecha(d.Birthday)
		v.Check(err == nil, "birthday", MsgFechaInvalida)
	}

	if v.Required("weight", d.Weight, MsgPeso) {
		peso, err := decimal.NewFromString(d.Weight)
		switch {
		case err != nil:
			v.AddError("weight", MsgPesoInvalido)
		case !peso.IsPositive():
			v.AddError("weight", MsgPesoPositivo)
		case !decimales(peso, DecimalesPeso):
			v.AddError("weight", MsgPesoDecimales)
		case peso.GreaterThanOrEqual(pesoMaximo):
			v.AddError("weight", MsgPesoMaximo)
		}
	}

	return v.Errors
}

func Medicamento(d dto.MedicamentoDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombreMedicamento) {
		v.Max("name", d.Name, LargoTexto)
	}
	if v.Required("descripcion", d.Descripcion, MsgDescripcion) {
		v.Max("descripcion", d.Descripcion, LargoTexto)
	}

	if v.Required("dosis", d.Dosis, MsgDosis) {
		dosis, err := decimal.NewFromString(d.Dosis)
		switch {
		case err != nil:
			v.AddError("dosis", MsgDosisInvalida)
		case !dosis.IsPositive():
			v.AddError("dosis", MsgDosisPositiva)
		case dosis.LessThan(decimal.NewFromInt(1)):
			v.AddError("dosis", MsgDosisMinima)
		case dosis.GreaterThan(decimal.NewFromInt(10)):
			v.AddError("dosis", MsgDosisMaxima)
		case !dosis.IsInteger():
			v.AddError("dosis", MsgDosisEntera)
		}
	}

	return v.Errors
}

func Proveedor(d dto.ProveedorDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombre) {
		v.Max("name", d.Name, LargoTexto)
	}
	v.email("email", d.Email)
	if v.Required("address", d.Address, MsgDireccion) {
		v.Max("address", d.Address, LargoTexto)
	}

	return v.Errors
}

func Producto(d dto.ProductoDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombreProducto) {
		v.Max("name", d.Name, LargoTexto)
	}
	if v.Required("type", d.Type, MsgTipoProducto) {
		v.Max("type", d.Type, LargoTexto)
	}

	if v.Required("price", d.Price, MsgPrecio) {
		precio, err := decimal.NewFromString(d.Price)
		switch {
		case err != nil:
			v.AddError("price", MsgPrecioInvalido)
		case !precio.IsPositive():
			v.AddError("price", MsgPrecioPositivo)
		case !decimales(precio, DecimalesPrecio):
			v.AddError("price", MsgPrecioDecimales)
		case precio.GreaterThanOrEqual(precioMaximo):
			v.AddError("price", MsgPrecioMaximo)
		}
	}

	return v.Errors
}

func Veterinario(d dto.VeterinarioDatos) Errors {
	v := New()

	if v.Required("name", d.Name, MsgNombre) {
		v.Max("name", d.Name, LargoTexto)
	}
	v.email("email", d.Email)
	if v.Required("phone", d.Phone, MsgTelefono) {
		v.Max("phone", d.Phone, LargoTelefonoVet)
	}

	if v.Required("speciality", d.Speciality, MsgEspecialidad) {
		_, ok := model.ParseEspecialidad(d.Speciality)
		v.Check(ok, "speciality", MsgEspecialidadNoValida)
	}

	return v.Errors
}
