package service

import (
	"context"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"

	"github.com/shopspring/decimal"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func mapProducto(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:    p.ID,
		Name:  p.Nombre,
		Type:  p.Tipo,
		Price: p.Precio,
	}
}

func datosProducto(p model.Producto) dto.ProductoDatos {
	return dto.ProductoDatos{
		Name:  p.Nombre,
		Type:  p.Tipo,
		Price: p.Precio.String(),
	}
}

func aplicarProducto(p *model.Producto, d dto.ProductoDatos) {
	precio, _ := decimal.NewFromString(d.Price)
	p.Nombre = d.Name
	p.Tipo = d.Type
	p.Precio = precio
}

func (s *productoService) Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	d := req.Datos()
	if errs := validator.Producto(d); !errs.Valid() {
		return nil, errs
	}

	p := &model.Producto{}
	aplicarProducto(p, d)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	logMutacion("producto", "crear", p.ID)
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosProducto(*p))
	if errs := validator.Producto(d); !errs.Valid() {
		return nil, errs
	}

	aplicarProducto(p, d)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	logMutacion("producto", "actualizar", p.ID)
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("producto", "eliminar", id)
	return nil
}
