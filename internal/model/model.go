// Package model holds the persisted records of the clinic.
package model

// All lists every record type, in migration order.
func All() []any {
	return []any{
		&Cliente{},
		&Mascota{},
		&Medicamento{},
		&Proveedor{},
		&Producto{},
		&Veterinario{},
	}
}
