package infra

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateListadoPDF(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateListadoPDF(&buf, Listado{
		Titulo:   "Clientes",
		Columnas: []string{"ID", "Nombre", "Teléfono", "Ciudad"},
		Filas: [][]string{
			{"1", "Juan Sebastián Verón", "54221555232", "La Plata"},
			{"2", "Ana", "54221000000"},
		},
		Generado: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestGenerateListadoPDF_SinColumnas(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateListadoPDF(&buf, Listado{Titulo: "Vacío"})
	assert.Error(t, err)
}

func TestRecortar(t *testing.T) {
	assert.Equal(t, "corto", recortar("corto", 10))
	assert.Equal(t, "Veteri...", recortar("Veterinaria", 7))
	assert.Equal(t, "ñandú", recortar("ñandú", 5))
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormLogLevel("silent"), gormLogLevel("anything"))
	assert.NotEqual(t, gormLogLevel("silent"), gormLogLevel("info"))
}
