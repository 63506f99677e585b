package service

import (
	"context"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"
)

// ClienteService defines business operations for clinic clients.
type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:      c.ID,
		Name:    c.Nombre,
		Phone:   c.Telefono,
		Email:   c.Email,
		City:    string(c.Ciudad),
		Address: c.Direccion,
	}
}

func datosCliente(c model.Cliente) dto.ClienteDatos {
	return dto.ClienteDatos{
		Name:    c.Nombre,
		Phone:   c.Telefono,
		Email:   c.Email,
		City:    string(c.Ciudad),
		Address: c.Direccion,
	}
}

// aplicarCliente copies already validated input onto the record.
func aplicarCliente(c *model.Cliente, d dto.ClienteDatos) {
	ciudad, _ := model.ParseCiudad(d.City)
	c.Nombre = d.Name
	c.Telefono = d.Phone
	c.Email = d.Email
	c.Ciudad = ciudad
	c.Direccion = d.Address
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	d := req.Datos()
	if errs := validator.Cliente(d); !errs.Valid() {
		return nil, errs
	}

	c := &model.Cliente{}
	aplicarCliente(c, d)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	logMutacion("cliente", "crear", c.ID)
	resp := mapCliente(*c)
	return &resp, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCliente(*c)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosCliente(*c))
	if errs := validator.Cliente(d); !errs.Valid() {
		return nil, errs
	}

	aplicarCliente(c, d)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	logMutacion("cliente", "actualizar", c.ID)
	resp := mapCliente(*c)
	return &resp, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("cliente", "eliminar", id)
	return nil
}
