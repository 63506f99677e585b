package service

import (
	"context"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"

	"github.com/shopspring/decimal"
)

// MascotaService defines business operations for patients.
type MascotaService interface {
	Crear(ctx context.Context, req dto.MascotaRequest) (*dto.MascotaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MascotaResponse, error)
	Listar(ctx context.Context) ([]dto.MascotaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.MascotaRequest) (*dto.MascotaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type mascotaService struct {
	repo repository.MascotaRepository
}

func NewMascotaService(repo repository.MascotaRepository) MascotaService {
	return &mascotaService{repo: repo}
}

func mapMascota(m model.Mascota) dto.MascotaResponse {
	return dto.MascotaResponse{
		ID:       m.ID,
		Name:     m.Nombre,
		Breed:    m.Raza,
		Birthday: m.FechaNacimiento.Format(validator.FechaISO),
		Weight:   m.Peso,
	}
}

func datosMascota(m model.Mascota) dto.MascotaDatos {
	return dto.MascotaDatos{
		Name:     m.Nombre,
		Breed:    m.Raza,
		Birthday: m.FechaNacimiento.Format(validator.FechaISO),
		Weight:   m.Peso.String(),
	}
}

// aplicarMascota copies already validated input onto the record.
func aplicarMascota(m *model.Mascota, d dto.MascotaDatos) {
	fecha, _ := validator.ParseFecha(d.Birthday)
	peso, _ := decimal.NewFromString(d.Weight)
	m.Nombre = d.Name
	m.Raza = d.Breed
	m.FechaNacimiento = fecha
	m.Peso = peso
}

func (s *mascotaService) Crear(ctx context.Context, req dto.MascotaRequest) (*dto.MascotaResponse, error) {
	d := req.Datos()
	if errs := validator.Mascota(d); !errs.Valid() {
		return nil, errs
	}

	m := &model.Mascota{}
	aplicarMascota(m, d)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	logMutacion("mascota", "crear", m.ID)
	resp := mapMascota(*m)
	return &resp, nil
}

func (s *mascotaService) ObtenerPorID(ctx context.Context, id uint) (*dto.MascotaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapMascota(*m)
	return &resp, nil
}

func (s *mascotaService) Listar(ctx context.Context) ([]dto.MascotaResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MascotaResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMascota(m))
	}
	return result, nil
}

// Actualizar rejects the whole change when any merged field is invalid; a
// negative weight leaves name, breed and birthday untouched as well.
func (s *mascotaService) Actualizar(ctx context.Context, id uint, req dto.MascotaRequest) (*dto.MascotaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosMascota(*m))
	if errs := validator.Mascota(d); !errs.Valid() {
		return nil, errs
	}

	aplicarMascota(m, d)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	logMutacion("mascota", "actualizar", m.ID)
	resp := mapMascota(*m)
	return &resp, nil
}

func (s *mascotaService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("mascota", "eliminar", id)
	return nil
}
