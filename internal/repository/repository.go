// Package repository persists clinic records through GORM.
// Services depend on the interfaces, not on the concrete GORM implementation,
// enabling clean unit testing with the in-memory adapter.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("registro no encontrado")

// Repository is the storage contract shared by every record type.
type Repository[T any] interface {
	Create(ctx context.Context, r *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, r *T) error
	Delete(ctx context.Context, id uint) error
}

type gormRepo[T any] struct {
	db    *gorm.DB
	tabla string
}

func newGormRepo[T any](db *gorm.DB, tabla string) *gormRepo[T] {
	return &gormRepo[T]{db: db, tabla: tabla}
}

func (r *gormRepo[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("%s: create: %w", r.tabla, err)
	}
	return nil
}

func (r *gormRepo[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: find %d: %w", r.tabla, id, err)
	}
	return &rec, nil
}

func (r *gormRepo[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("%s: list: %w", r.tabla, err)
	}
	return list, nil
}

// Update writes every column of rec. A record deleted in the meantime is
// reported as ErrNotFound instead of being inserted again.
func (r *gormRepo[T]) Update(ctx context.Context, rec *T) error {
	res := r.db.WithContext(ctx).Model(rec).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("%s: update: %w", r.tabla, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("%s: delete %d: %w", r.tabla, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
