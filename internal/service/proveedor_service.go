package service

import (
	"context"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func mapProveedor(p model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:      p.ID,
		Name:    p.Nombre,
		Email:   p.Email,
		Address: p.Direccion,
	}
}

func datosProveedor(p model.Proveedor) dto.ProveedorDatos {
	return dto.ProveedorDatos{
		Name:    p.Nombre,
		Email:   p.Email,
		Address: p.Direccion,
	}
}

func aplicarProveedor(p *model.Proveedor, d dto.ProveedorDatos) {
	p.Nombre = d.Name
	p.Email = d.Email
	p.Direccion = d.Address
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	d := req.Datos()
	if errs := validator.Proveedor(d); !errs.Valid() {
		return nil, errs
	}

	p := &model.Proveedor{}
	aplicarProveedor(p, d)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	logMutacion("proveedor", "crear", p.ID)
	resp := mapProveedor(*p)
	return &resp, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProveedor(*p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProveedor(p))
	}
	return result, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosProveedor(*p))
	if errs := validator.Proveedor(d); !errs.Valid() {
		return nil, errs
	}

	aplicarProveedor(p, d)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	logMutacion("proveedor", "actualizar", p.ID)
	resp := mapProveedor(*p)
	return &resp, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("proveedor", "eliminar", id)
	return nil
}
