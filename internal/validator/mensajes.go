package validator

import "fmt"

// Messages shown to the user, keyed by the rule that failed.
const (
	MsgNombre               = "Por favor ingrese un nombre"
	MsgNombreSoloLetras     = "El nombre solo puede contener letras y espacios"
	MsgTelefono             = "Por favor ingrese un teléfono"
	MsgTelefonoInvalido     = "Por favor ingrese un telefono valido"
	MsgTelefonoPrefijo      = "El teléfono debe comenzar con 54"
	MsgEmail                = "Por favor ingrese un email"
	MsgEmailInvalido        = "Por favor ingrese un email válido"
	MsgEmailSinUsuario      = "El email debe incluir un usuario antes de @vetsoft.com"
	MsgEmailDominio         = "El email debe terminar en @vetsoft.com"
	MsgCiudad               = "Por favor ingrese una ciudad"
	MsgCiudadInvalida       = "Por favor seleccione una ciudad válida"
	MsgFecha                = "Por favor ingrese una fecha"
	MsgFechaInvalida        = "Formato de fecha inválido"
	MsgPeso                 = "Por favor ingrese un peso"
	MsgPesoInvalido         = "Por favor ingrese un peso válido"
	MsgPesoPositivo         = "El peso debe ser mayor que 0"
	MsgPesoDecimales        = "El peso admite como máximo 3 decimales"
	MsgPesoMaximo           = "El peso debe ser menor que 100000"
	MsgNombreMedicamento    = "Por favor ingrese un nombre para el medicamento"
	MsgDescripcion          = "Por favor ingrese una descripcion"
	MsgDosis                = "Por favor ingrese una dosis"
	MsgDosisInvalida        = "La cantidad de dosis no es correcta"
	MsgDosisPositiva        = "La dosis debe ser mayor a cero"
	MsgDosisMinima          = "La dosis debe ser mayor o igual que 1"
	MsgDosisMaxima          = "La dosis debe ser menor que 10"
	MsgDosisEntera          = "La dosis debe ser un número entero"
	MsgDireccion            = "Por favor ingrese una dirección"
	MsgNombreProducto       = "Por favor ingrese un nombre para el producto"
	MsgTipoProducto         = "Por favor ingrese el tipo del producto"
	MsgPrecio               = "Por favor ingrese el precio del producto"
	MsgPrecioInvalido       = "Por favor ingrese un precio valido para el producto"
	MsgPrecioPositivo       = "Por favor ingrese un precio del producto mayor que cero"
	MsgPrecioDecimales      = "El precio admite como máximo 2 decimales"
	MsgPrecioMaximo         = "El precio debe ser menor que 10000000000"
	MsgEspecialidad         = "Por favor seleccione una especialidad válida"
	MsgEspecialidadNoValida = "Especialidad no válida"
)

// MsgLargoMaximo is reported when a value does not fit its column.
func MsgLargoMaximo(n int) string {
	return fmt.Sprintf("Máximo %d caracteres", n)
}

// DominioClientes is the only mail domain accepted for clients.
const DominioClientes = "@vetsoft.com"
