package memory

import (
	"context"
	"testing"

	"vetsoft/internal/model"
	"vetsoft/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSet().Proveedores

	a := &model.Proveedor{Nombre: "A", Email: "a@x.com", Direccion: "Calle 1"}
	b := &model.Proveedor{Nombre: "B", Email: "b@x.com", Direccion: "Calle 2"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Nombre)

	got.Nombre = "A2"
	assert.Equal(t, "A", mustFind(t, repo, a.ID).Nombre, "returned records are copies")
	require.NoError(t, repo.Update(ctx, got))
	assert.Equal(t, "A2", mustFind(t, repo, a.ID).Nombre)

	require.NoError(t, repo.Delete(ctx, a.ID))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Nombre)
}

func TestTable_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSet().Clientes

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 99), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &model.Cliente{ID: 99}), repository.ErrNotFound)
}

func TestTable_UpdateAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSet().Proveedores

	p := &model.Proveedor{Nombre: "A", Email: "a@x.com", Direccion: "Calle 1"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	assert.ErrorIs(t, repo.Update(ctx, p), repository.ErrNotFound)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func mustFind(t *testing.T, repo repository.ProveedorRepository, id uint) *model.Proveedor {
	t.Helper()
	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return p
}
