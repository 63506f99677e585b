// Package memory keeps records in process memory. It backs the unit tests and
// `vetsoft serve --memory`; data is lost on restart.
package memory

import (
	"context"
	"sync"

	"vetsoft/internal/model"
	"vetsoft/internal/repository"
)

type table[T any] struct {
	mu   sync.RWMutex
	rows map[uint]T
	next uint
	id   func(*T) *uint
}

func newTable[T any](id func(*T) *uint) *table[T] {
	return &table[T]{rows: make(map[uint]T), id: id}
}

func (t *table[T]) Create(_ context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	*t.id(rec) = t.next
	t.rows[t.next] = *rec
	return nil
}

func (t *table[T]) FindByID(_ context.Context, id uint) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (t *table[T]) List(_ context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	list := make([]T, 0, len(t.rows))
	for id := uint(1); id <= t.next; id++ {
		if rec, ok := t.rows[id]; ok {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (t *table[T]) Update(_ context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := *t.id(rec)
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	t.rows[id] = *rec
	return nil
}

func (t *table[T]) Delete(_ context.Context, id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// NewSet returns empty in-memory repositories for every record type.
func NewSet() repository.Set {
	return repository.Set{
		Clientes:     newTable(func(r *model.Cliente) *uint { return &r.ID }),
		Mascotas:     newTable(func(r *model.Mascota) *uint { return &r.ID }),
		Medicamentos: newTable(func(r *model.Medicamento) *uint { return &r.ID }),
		Proveedores:  newTable(func(r *model.Proveedor) *uint { return &r.ID }),
		Productos:    newTable(func(r *model.Producto) *uint { return &r.ID }),
		Veterinarios: newTable(func(r *model.Veterinario) *uint { return &r.ID }),
	}
}
