package service

import (
	"context"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"
)

type VeterinarioService interface {
	Crear(ctx context.Context, req dto.VeterinarioRequest) (*dto.VeterinarioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.VeterinarioResponse, error)
	Listar(ctx context.Context) ([]dto.VeterinarioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.VeterinarioRequest) (*dto.VeterinarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type veterinarioService struct {
	repo repository.VeterinarioRepository
}

func NewVeterinarioService(repo repository.VeterinarioRepository) VeterinarioService {
	return &veterinarioService{repo: repo}
}

func mapVeterinario(v model.Veterinario) dto.VeterinarioResponse {
	return dto.VeterinarioResponse{
		ID:         v.ID,
		Name:       v.Nombre,
		Email:      v.Email,
		Phone:      v.Telefono,
		Speciality: string(v.Especialidad),
	}
}

func datosVeterinario(v model.Veterinario) dto.VeterinarioDatos {
	return dto.VeterinarioDatos{
		Name:       v.Nombre,
		Email:      v.Email,
		Phone:      v.Telefono,
		Speciality: string(v.Especialidad),
	}
}

func aplicarVeterinario(v *model.Veterinario, d dto.VeterinarioDatos) {
	esp, _ := model.ParseEspecialidad(d.Speciality)
	v.Nombre = d.Name
	v.Email = d.Email
	v.Telefono = d.Phone
	v.Especialidad = esp
}

func (s *veterinarioService) Crear(ctx context.Context, req dto.VeterinarioRequest) (*dto.VeterinarioResponse, error) {
	d := req.Datos()
	if errs := validator.Veterinario(d); !errs.Valid() {
		return nil, errs
	}

	v := &model.Veterinario{}
	aplicarVeterinario(v, d)
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	logMutacion("veterinario", "crear", v.ID)
	resp := mapVeterinario(*v)
	return &resp, nil
}

func (s *veterinarioService) ObtenerPorID(ctx context.Context, id uint) (*dto.VeterinarioResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapVeterinario(*v)
	return &resp, nil
}

func (s *veterinarioService) Listar(ctx context.Context) ([]dto.VeterinarioResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VeterinarioResponse, 0, len(list))
	for _, v := range list {
		result = append(result, mapVeterinario(v))
	}
	return result, nil
}

func (s *veterinarioService) Actualizar(ctx context.Context, id uint, req dto.VeterinarioRequest) (*dto.VeterinarioResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosVeterinario(*v))
	if errs := validator.Veterinario(d); !errs.Valid() {
		return nil, errs
	}

	aplicarVeterinario(v, d)
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	logMutacion("veterinario", "actualizar", v.ID)
	resp := mapVeterinario(*v)
	return &resp, nil
}

func (s *veterinarioService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("veterinario", "eliminar", id)
	return nil
}
