package service

import (
	"context"
	"strconv"

	"vetsoft/internal/dto"
	"vetsoft/internal/model"
	"vetsoft/internal/repository"
	"vetsoft/internal/validator"

	"github.com/shopspring/decimal"
)

type MedicamentoService interface {
	Crear(ctx context.Context, req dto.MedicamentoRequest) (*dto.MedicamentoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.MedicamentoResponse, error)
	Listar(ctx context.Context) ([]dto.MedicamentoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.MedicamentoRequest) (*dto.MedicamentoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type medicamentoService struct {
	repo repository.MedicamentoRepository
}

func NewMedicamentoService(repo repository.MedicamentoRepository) MedicamentoService {
	return &medicamentoService{repo: repo}
}

func mapMedicamento(m model.Medicamento) dto.MedicamentoResponse {
	return dto.MedicamentoResponse{
		ID:          m.ID,
		Name:        m.Nombre,
		Descripcion: m.Descripcion,
		Dosis:       m.Dosis,
	}
}

func datosMedicamento(m model.Medicamento) dto.MedicamentoDatos {
	return dto.MedicamentoDatos{
		Name:        m.Nombre,
		Descripcion: m.Descripcion,
		Dosis:       strconv.Itoa(m.Dosis),
	}
}

func aplicarMedicamento(m *model.Medicamento, d dto.MedicamentoDatos) {
	dosis, _ := decimal.NewFromString(d.Dosis)
	m.Nombre = d.Name
	m.Descripcion = d.Descripcion
	m.Dosis = int(dosis.IntPart())
}

func (s *medicamentoService) Crear(ctx context.Context, req dto.MedicamentoRequest) (*dto.MedicamentoResponse, error) {
	d := req.Datos()
	if errs := validator.Medicamento(d); !errs.Valid() {
		return nil, errs
	}

	m := &model.Medicamento{}
	aplicarMedicamento(m, d)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	logMutacion("medicamento", "crear", m.ID)
	resp := mapMedicamento(*m)
	return &resp, nil
}

func (s *medicamentoService) ObtenerPorID(ctx context.Context, id uint) (*dto.MedicamentoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapMedicamento(*m)
	return &resp, nil
}

func (s *medicamentoService) Listar(ctx context.Context) ([]dto.MedicamentoResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MedicamentoResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMedicamento(m))
	}
	return result, nil
}

func (s *medicamentoService) Actualizar(ctx context.Context, id uint, req dto.MedicamentoRequest) (*dto.MedicamentoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := req.Sobre(datosMedicamento(*m))
	if errs := validator.Medicamento(d); !errs.Valid() {
		return nil, errs
	}

	aplicarMedicamento(m, d)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	logMutacion("medicamento", "actualizar", m.ID)
	resp := mapMedicamento(*m)
	return &resp, nil
}

func (s *medicamentoService) Eliminar(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logMutacion("medicamento", "eliminar", id)
	return nil
}
